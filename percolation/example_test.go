package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// ExamplePercolation demonstrates a 3×3 grid that percolates down the
// middle column while a bottom-corner site stays empty of water.
//
//	. O .
//	. O .
//	O O O
func ExamplePercolation() {
	p, _ := percolation.New(3)
	for _, s := range [][2]int{{1, 2}, {2, 2}, {3, 2}, {3, 1}, {3, 3}} {
		_ = p.Open(s[0], s[1])
	}
	full, _ := p.IsFull(3, 3)
	corner, _ := p.IsFull(1, 1)

	fmt.Println("percolates:", p.Percolates())
	fmt.Println("(3,3) full:", full)
	fmt.Println("(1,1) full:", corner)
	fmt.Println("open sites:", p.NumberOfOpenSites())

	// Output:
	// percolates: true
	// (3,3) full: true
	// (1,1) full: false
	// open sites: 5
}
