// SPDX-License-Identifier: MIT

// Command percstats estimates the percolation threshold of an N×N grid over
// T independent Monte Carlo trials and prints the mean, the sample standard
// deviation and the confidence interval.
//
//	percstats 200 100
//	percstats 200 100 --seed 7 --json
package main

import (
	"fmt"
	"os"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
