// SPDX-License-Identifier: MIT

// Package stats estimates the percolation threshold of an N×N grid by Monte
// Carlo simulation.
//
// What:
//
//   - Experiment opens uniformly random closed sites of a fresh grid until it
//     percolates and returns the fraction of open sites at that moment.
//   - Run repeats Experiment T times and aggregates the per-trial thresholds.
//   - Summarize computes the sample mean, sample standard deviation and the
//     confidence interval mean ± z·s/√T (z = 1.96 for 95% by default).
//
// Determinism:
//
//   - Every run is seeded. Seed 0 maps to a fixed default seed, so omitting
//     WithSeed still gives reproducible output.
//   - Each trial draws from its own RNG stream derived from the run seed and
//     the trial index, so trials are independent of one another's draw counts.
//
// Trials run sequentially on the calling goroutine.
//
// Errors:
//
//   - ErrInvalidArgument: N ≤ 0, T ≤ 0, or no thresholds to summarize.
//   - context errors from WithContext, checked between trials.
package stats
