// SPDX-License-Identifier: MIT

// Package percolation models an N×N grid of sites that can be opened one at a
// time, tracking incrementally whether water poured on the top row reaches
// each site and whether it drains through the bottom row.
//
// What:
//
//   - Sites are addressed by 1-based (row, col) coordinates, (1,1) is the upper-left corner.
//   - Open(i, j) digs a site and joins it with its already-open orthogonal neighbours.
//   - IsFull(i, j) reports whether an open path connects the site to the top row.
//   - Percolates() reports whether an open path connects the top row to the bottom row.
//
// How:
//
//	Sites live in a single linear index space of size N²+2. Index 0 is a virtual
//	source joined to every open top-row site, index N²+1 a virtual sink joined to
//	every open bottom-row site. Two unionfind instances are kept side by side:
//
//	  id   — all N²+2 nodes; answers Percolates (source ~ sink).
//	  full — N²+1 nodes, no sink; answers IsFull (site ~ source).
//
//	Both receive every union except the sink union, which only id sees. Without
//	the second structure a bottom-row cluster that never touches the top would
//	be reported full as soon as any other column percolates ("backwash"): it
//	reaches the source through the shared sink.
//
// Complexity:
//
//   - New:         O(N²) time and memory.
//   - Open:        O(α(N²)) amortized (at most 5 unions per structure).
//   - IsOpen:      O(1).
//   - IsFull, Percolates: O(α(N²)) amortized.
//
// Errors:
//
//   - ErrInvalidSize: New was given N ≤ 0.
//   - ErrOutOfRange: a row or column lies outside [1, N].
package percolation
