// SPDX-License-Identifier: MIT

package unionfind

import "fmt"

// New constructs a UnionFind of size singleton sets.
// Each element starts as its own root with set size 1.
// Returns ErrInvalidSize if size < 0; size == 0 yields an empty universe.
//
// Complexity: O(size) time and memory.
func New(size int) (*UnionFind, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	uf := &UnionFind{
		parent: make([]int, size),
		size:   make([]int, size),
		count:  size,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements in the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets remaining.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the set containing p.
// Returns ErrOutOfRange if p lies outside [0, Len()).
//
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same set.
// Returns ErrOutOfRange if either element is outside [0, Len()).
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// Union merges the sets containing p and q. Merging two elements that are
// already connected is a no-op. The root of the smaller set is attached
// under the root of the larger one; on a tie q's root goes under p's.
// Both indices are validated before any link is rewritten.
//
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(p, q int) error {
	if err := uf.validate(p); err != nil {
		return err
	}
	if err := uf.validate(q); err != nil {
		return err
	}

	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return nil
	}
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return nil
}

// SizeOf returns the number of elements in the set containing p.
func (uf *UnionFind) SizeOf(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.size[uf.root(p)], nil
}

// root walks to the root of p, pointing every visited node at its
// grandparent on the way (path halving). p must already be validated.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return outOfRange(p, len(uf.parent))
	}

	return nil
}
