// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Summarize computes the sample mean, the sample standard deviation
// (denominator T-1) and the interval mean ± z·s/√T over thresholds.
// A single sample has no spread: its deviation is 0 and the interval
// collapses onto the mean.
// Returns ErrInvalidArgument for an empty sample or z ≤ 0.
//
// Complexity: O(T) time, O(1) extra memory.
func Summarize(thresholds []float64, z float64) (Summary, error) {
	t := len(thresholds)
	if t == 0 {
		return Summary{}, fmt.Errorf("%w: no thresholds to summarize", ErrInvalidArgument)
	}
	if !(z > 0) {
		return Summary{}, fmt.Errorf("%w: confidence quantile %v", ErrInvalidArgument, z)
	}

	mean := lo.Sum(thresholds) / float64(t)
	stddev := 0.0
	if t > 1 {
		squares := lo.SumBy(thresholds, func(x float64) float64 {
			d := x - mean
			return d * d
		})
		stddev = math.Sqrt(squares / float64(t-1))
	}
	half := z * stddev / math.Sqrt(float64(t))

	return Summary{
		Mean:         mean,
		StdDev:       stddev,
		ConfidenceLo: mean - half,
		ConfidenceHi: mean + half,
	}, nil
}
