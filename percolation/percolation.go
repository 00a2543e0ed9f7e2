// SPDX-License-Identifier: MIT

package percolation

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/percolation/unionfind"
)

// New creates an n×n grid with every site closed.
// Returns ErrInvalidSize if n ≤ 0.
//
// Complexity: O(n²) time and memory.
func New(n int) (*Percolation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	sites := n * n
	id, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: allocating id structure: %w", err)
	}
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, fmt.Errorf("percolation: allocating full structure: %w", err)
	}

	p := &Percolation{
		n:      n,
		source: 0,
		sink:   sites + 1,
		open:   bitset.New(uint(sites + 2)),
		id:     id,
		full:   full,
	}
	// The anchors count as open so they can take part in unions.
	p.open.Set(uint(p.source)).Set(uint(p.sink))

	return p, nil
}

// Size returns the grid side length n.
func (p *Percolation) Size() int {
	return p.n
}

// Open opens site (i, j) and joins it with every already-open orthogonal
// neighbour. Top-row sites join the source in both structures; bottom-row
// sites join the sink in the id structure only. Opening an open site is a
// no-op. Returns ErrOutOfRange if (i, j) is outside the grid.
//
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Open(i, j int) error {
	if err := p.validate(i, j); err != nil {
		return err
	}
	site := p.siteIndex(i, j)
	if p.open.Test(uint(site)) {
		return nil
	}
	p.open.Set(uint(site))

	// A 1×1 grid touches both anchors at once.
	if p.n == 1 {
		if err := p.connect(site, p.source); err != nil {
			return err
		}

		return p.connectSink(site)
	}

	if i == 1 {
		if err := p.connect(site, p.source); err != nil {
			return err
		}
	}
	if i == p.n {
		if err := p.connectSink(site); err != nil {
			return err
		}
	}
	for _, d := range neighborOffsets {
		ni, nj := i+d[0], j+d[1]
		if !p.inBounds(ni, nj) {
			continue
		}
		neighbor := p.siteIndex(ni, nj)
		if !p.open.Test(uint(neighbor)) {
			continue
		}
		if err := p.connect(site, neighbor); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether site (i, j) is open.
// Returns ErrOutOfRange if (i, j) is outside the grid.
func (p *Percolation) IsOpen(i, j int) (bool, error) {
	if err := p.validate(i, j); err != nil {
		return false, err
	}

	return p.open.Test(uint(p.siteIndex(i, j))), nil
}

// IsFull reports whether site (i, j) is connected to the top row through
// open sites. A full site is always open.
// Returns ErrOutOfRange if (i, j) is outside the grid.
func (p *Percolation) IsFull(i, j int) (bool, error) {
	if err := p.validate(i, j); err != nil {
		return false, err
	}

	return p.full.Connected(p.siteIndex(i, j), p.source)
}

// Percolates reports whether the top row is connected to the bottom row.
func (p *Percolation) Percolates() bool {
	// source and sink are 0 and n²+1, both inside id's universe of n²+2.
	ok, _ := p.id.Connected(p.source, p.sink)

	return ok
}

// NumberOfOpenSites returns how many real sites are open.
func (p *Percolation) NumberOfOpenSites() int {
	// Source and sink bits are always set.
	return int(p.open.Count()) - 2
}

// OpenFraction returns the share of open sites, NumberOfOpenSites / n².
func (p *Percolation) OpenFraction() float64 {
	return float64(p.NumberOfOpenSites()) / float64(p.n*p.n)
}

// connect joins a and b in both structures. Neither index may be the sink.
func (p *Percolation) connect(a, b int) error {
	if err := p.id.Union(a, b); err != nil {
		return fmt.Errorf("percolation: union id(%d, %d): %w", a, b, err)
	}
	if err := p.full.Union(a, b); err != nil {
		return fmt.Errorf("percolation: union full(%d, %d): %w", a, b, err)
	}

	return nil
}

// connectSink joins site with the sink in the id structure only; the full
// structure never sees the sink, which is what keeps IsFull free of backwash.
func (p *Percolation) connectSink(site int) error {
	if err := p.id.Union(site, p.sink); err != nil {
		return fmt.Errorf("percolation: union id(%d, sink): %w", site, err)
	}

	return nil
}
