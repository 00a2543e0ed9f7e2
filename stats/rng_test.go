package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// draws returns the first k values of the stream for trial.
func draws(parent int64, trial, k int) []int {
	rng := trialRNG(parent, trial)
	out := make([]int, k)
	for i := range out {
		out[i] = rng.Intn(1 << 20)
	}

	return out
}

func TestTrialRNG_Reproducible(t *testing.T) {
	parent := rngFromSeed(0).Int63()
	for trial := 0; trial < 4; trial++ {
		assert.Equal(t, draws(parent, trial, 16), draws(parent, trial, 16), "trial %d", trial)
	}
}

func TestTrialRNG_DistinctStreams(t *testing.T) {
	parent := rngFromSeed(0).Int63()
	seen := make(map[int64]int)
	for trial := 0; trial < 64; trial++ {
		seed := deriveSeed(parent, uint64(trial))
		prev, dup := seen[seed]
		assert.False(t, dup, "trials %d and %d share a seed", prev, trial)
		seen[seed] = trial
	}
	assert.NotEqual(t, draws(parent, 0, 16), draws(parent, 1, 16))
	assert.NotEqual(t, draws(parent, 0, 16), draws(parent+1, 0, 16))
}

// A trial's thresholds do not depend on the trials before it: running only
// the first k trials reproduces the prefix of a longer run.
func TestRun_TrialsIndependentOfEarlierDraws(t *testing.T) {
	long, err := Run(12, 8, WithSeed(5))
	require.NoError(t, err)

	parent := rngFromSeed(5).Int63()
	for trial := 0; trial < 8; trial++ {
		x, err := Experiment(12, trialRNG(parent, trial))
		require.NoError(t, err)
		assert.Equal(t, long.Thresholds[trial], x, "trial %d", trial)
	}
}
