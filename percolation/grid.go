// SPDX-License-Identifier: MIT

package percolation

import "fmt"

// neighborOffsets lists orthogonal (row, col) steps: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// siteIndex maps 1-based (i, j) to the linear index (i-1)*n + j.
// Real sites occupy [1, n*n]; 0 and n*n+1 are reserved for source and sink.
// This is the only place the 2D→1D arithmetic lives.
func (p *Percolation) siteIndex(i, j int) int {
	return (i-1)*p.n + j
}

// inBounds reports whether (i, j) lies within [1, n]×[1, n].
func (p *Percolation) inBounds(i, j int) bool {
	return i >= 1 && i <= p.n && j >= 1 && j <= p.n
}

// validate rejects coordinates outside the grid before any state is touched.
func (p *Percolation) validate(i, j int) error {
	if !p.inBounds(i, j) {
		return fmt.Errorf("%w: (%d, %d) not in [1, %d]×[1, %d]", ErrOutOfRange, i, j, p.n, p.n)
	}

	return nil
}
