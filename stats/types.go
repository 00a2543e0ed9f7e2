// SPDX-License-Identifier: MIT

package stats

import (
	"context"
	"errors"
	"math/rand"
)

// ErrInvalidArgument indicates a non-positive grid size or trial count, or an
// empty threshold sample.
var ErrInvalidArgument = errors.New("stats: invalid argument")

// DefaultConfidence is the two-sided 95% normal quantile.
const DefaultConfidence = 1.96

// Summary holds the aggregate statistics of a threshold sample.
type Summary struct {
	Mean         float64 `json:"mean"`
	StdDev       float64 `json:"stddev"`
	ConfidenceLo float64 `json:"confidence_lo"`
	ConfidenceHi float64 `json:"confidence_hi"`
}

// Result is the outcome of Run: the inputs, every per-trial threshold in
// trial order, and their Summary.
//
// Seed is the value that reproduces the run through WithSeed. It is nil when
// the run drew from a caller-supplied WithRand source.
type Result struct {
	N          int       `json:"n"`
	Trials     int       `json:"trials"`
	Seed       *int64    `json:"seed,omitempty"`
	Confidence float64   `json:"confidence"`
	Thresholds []float64 `json:"thresholds"`
	Summary
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the parameters and hooks of a simulation run.
type Options struct {
	// Ctx is checked before every trial.
	Ctx context.Context

	// Seed feeds the base RNG when Rand is nil. 0 selects defaultRNGSeed.
	Seed int64

	// Rand, if non-nil, is the base RNG; trial streams are derived from it.
	Rand *rand.Rand

	// Confidence is the normal quantile z used for the interval.
	Confidence float64

	// OnTrial is called after each trial with its 0-based index and threshold.
	OnTrial func(trial int, threshold float64)
}

// DefaultOptions returns Options with a background context, the default
// seed, z = DefaultConfidence and a no-op OnTrial hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Seed:       0,
		Confidence: DefaultConfidence,
		OnTrial:    func(int, float64) {},
	}
}

// WithContext sets the context checked between trials. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed fixes the base seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies an explicit base RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("stats: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithConfidence sets the normal quantile z for the interval (e.g. 2.576 for 99%).
// Panics if z ≤ 0.
func WithConfidence(z float64) Option {
	if !(z > 0) {
		panic("stats: WithConfidence(z<=0)")
	}
	return func(o *Options) {
		o.Confidence = z
	}
}

// WithOnTrial registers a callback run after every trial. nil is ignored.
func WithOnTrial(fn func(trial int, threshold float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrial = fn
		}
	}
}
