// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/stats"
)

// printResult writes res as text or, with out.JSON, as an indented JSON document.
// Per-trial thresholds are always part of the JSON form.
func printResult(w io.Writer, res *stats.Result, out config.OutputConfig) error {
	if out.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(res))
	}

	label := fmt.Sprintf("%s confidence interval", confidenceLevel(res.Confidence))
	width := max(len(label), len("stddev"))
	lines := []string{
		fmt.Sprintf("%-*s = %v", width, "mean", res.Mean),
		fmt.Sprintf("%-*s = %v", width, "stddev", res.StdDev),
		fmt.Sprintf("%-*s = [%v, %v]", width, label, res.ConfidenceLo, res.ConfidenceHi),
	}
	if out.Thresholds {
		values := lo.Map(res.Thresholds, func(x float64, _ int) string {
			return strconv.FormatFloat(x, 'f', -1, 64)
		})
		lines = append(lines, fmt.Sprintf("%-*s = %s", width, "thresholds", strings.Join(values, " ")))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return errors.WithStack(err)
}

// confidenceLevel renders the two-sided coverage of quantile z, e.g. 1.96 → "95%".
func confidenceLevel(z float64) string {
	level := 100 * math.Erf(z/math.Sqrt2)
	return strconv.FormatFloat(math.Round(level*100)/100, 'f', -1, 64) + "%"
}
