// SPDX-License-Identifier: MIT

package stats

import "math/rand"

// defaultRNGSeed is used when callers leave the seed at 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed maps (parent, stream) to the seed of one trial's stream. The
// SplitMix64 finalizer keeps consecutive trial indices from yielding related
// math/rand sources.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// trialRNG returns the stream for one trial. Experiment draws a variable
// number of values before the grid percolates; with one stream per trial the
// sites opened in trial k depend only on parent and k, never on how many
// draws the earlier trials consumed. parent is drawn once per run from the
// base RNG.
func trialRNG(parent int64, trial int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, uint64(trial))))
}
