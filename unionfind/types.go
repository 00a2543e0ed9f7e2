// SPDX-License-Identifier: MIT

package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for union-find operations.
var (
	// ErrInvalidSize indicates New was called with a negative universe size.
	ErrInvalidSize = errors.New("unionfind: size must be non-negative")

	// ErrOutOfRange indicates an element index outside [0, Len()).
	ErrOutOfRange = errors.New("unionfind: element out of range")
)

// UnionFind is a weighted quick-union structure with path halving.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
// The zero value is an empty universe; use New to allocate elements.
// UnionFind is not safe for concurrent use.
type UnionFind struct {
	parent []int
	size   []int
	count  int // number of disjoint sets remaining
}

// outOfRange wraps ErrOutOfRange with the offending element and universe size.
func outOfRange(p, n int) error {
	return fmt.Errorf("%w: element %d not in [0, %d)", ErrOutOfRange, p, n)
}
