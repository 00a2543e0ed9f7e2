// SPDX-License-Identifier: MIT

package percolation

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates the grid side length is not positive.
	ErrInvalidSize = errors.New("percolation: grid size must be positive")

	// ErrOutOfRange indicates a row or column outside [1, N].
	ErrOutOfRange = errors.New("percolation: site out of range")
)

// Percolation is an N×N grid of sites with incremental connectivity to a
// virtual source (top) and virtual sink (bottom).
//
// Sites only ever move from closed to open, and once Percolates reports true
// it stays true. A Percolation is owned by a single caller; it is not safe for
// concurrent use.
type Percolation struct {
	n      int
	source int // virtual top node, always index 0
	sink   int // virtual bottom node, index n*n+1; absent from full

	open *bitset.BitSet       // n*n+2 bits; source and sink are set at construction
	id   *unionfind.UnionFind // n*n+2 nodes, answers Percolates
	full *unionfind.UnionFind // n*n+1 nodes, answers IsFull
}
