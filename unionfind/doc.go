// SPDX-License-Identifier: MIT

// Package unionfind provides a fixed-size disjoint-set (union-find) structure
// over dense integer elements 0..n-1.
//
// What:
//
//   - New(n) creates n singleton sets, each element its own root with size 1.
//   - Union(p, q) merges the sets containing p and q (weighted by set size).
//   - Connected(p, q) reports whether p and q share a root.
//   - Find(p) returns the canonical root of p's set.
//   - Count() reports how many disjoint sets remain.
//
// Why:
//
//   - Incremental connectivity: percolation grids, Kruskal-style MST,
//     image labelling, network partition detection.
//
// Complexity:
//
//   - Union / Connected / Find: O(α(n)) amortized (union by size + path halving).
//   - Memory: O(n).
//
// Errors:
//
//   - ErrInvalidSize: New was given a negative size.
//   - ErrOutOfRange: an element index lies outside [0, n).
//
// Path halving rewrites parent links during Find; this never changes which
// elements are connected, only how quickly later queries reach the root.
package unionfind
