// Package percolation estimates the site-percolation threshold of square
// grids with union-find connectivity and Monte Carlo trials.
//
// Packages:
//
//	unionfind/   — fixed-size disjoint sets, union by size + path halving
//	percolation/ — N×N grid model: Open, IsOpen, IsFull, Percolates (backwash-free)
//	stats/       — repeated trials, seeded RNG streams, mean/stddev/confidence interval
//	cmd/percstats — command line front end
//
// Quick ASCII example (O = open, . = closed), N = 4:
//
//	O . . .
//	O . . .      column 1 connects top to bottom: the grid percolates,
//	O . . O      while the bottom-right cluster reaches only the bottom
//	O . O O      row and is therefore not full.
//
//	go install github.com/katalvlaran/percolation/cmd/percstats@latest
//	percstats 200 100
package percolation
