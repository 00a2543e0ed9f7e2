// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"github.com/katalvlaran/percolation/percolation"
)

// Experiment runs one trial on a fresh n×n grid: it opens uniformly random
// closed sites until the grid percolates and returns the open fraction at
// that point, a value in (0, 1]. Rows and columns are drawn from [1, n].
//
// Terminates after at most n² openings, since a fully open grid percolates.
//
// Complexity: O(n² α(n²)) expected draws dominate for large n.
func Experiment(n int, rng *rand.Rand) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: grid size %d", ErrInvalidArgument, n)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	p, err := percolation.New(n)
	if err != nil {
		return 0, err
	}

	for !p.Percolates() {
		i, j := rng.Intn(n)+1, rng.Intn(n)+1
		open, err := p.IsOpen(i, j)
		if err != nil {
			return 0, err
		}
		if open {
			continue
		}
		if err := p.Open(i, j); err != nil {
			return 0, err
		}
	}

	return p.OpenFraction(), nil
}

// Run performs trials independent experiments on n×n grids and summarizes
// the resulting thresholds. Returns ErrInvalidArgument if n ≤ 0 or
// trials ≤ 0, and the context error if the run is cancelled between trials.
func Run(n, trials int, opts ...Option) (*Result, error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("%w: n=%d trials=%d, both must be positive", ErrInvalidArgument, n, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	base := o.Rand
	if base == nil {
		base = rngFromSeed(o.Seed)
	}
	parent := base.Int63()

	thresholds := make([]float64, trials)
	for t := 0; t < trials; t++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("stats: run stopped after %d of %d trials: %w", t, trials, err)
		}
		x, err := Experiment(n, trialRNG(parent, t))
		if err != nil {
			return nil, fmt.Errorf("stats: trial %d: %w", t, err)
		}
		thresholds[t] = x
		o.OnTrial(t, x)
	}

	summary, err := Summarize(thresholds, o.Confidence)
	if err != nil {
		return nil, err
	}

	res := &Result{
		N:          n,
		Trials:     trials,
		Confidence: o.Confidence,
		Thresholds: thresholds,
		Summary:    summary,
	}
	if o.Rand == nil {
		res.Seed = lo.ToPtr(o.Seed)
	}

	return res, nil
}
