// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/logging"
	"github.com/katalvlaran/percolation/stats"
)

// errInvalidArgument marks bad positional arguments (non-numeric or ≤ 0).
var errInvalidArgument = errors.New("invalid argument")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percstats [N T]",
		Short: "Estimate the percolation threshold by Monte Carlo simulation",
		Long: `percstats opens random sites of an N×N grid until it percolates,
repeats the experiment T times and reports the mean open fraction, its
sample standard deviation and a confidence interval for the threshold.

N and T may also come from the YAML file given with --config.

Examples:
  percstats 200 100
  percstats 200 100 --seed 7 --json
  percstats --config percstats.yaml --verbose`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return errors.Errorf("expected N and T, got %d argument(s)", len(args))
			}
			return nil
		},
		SilenceUsage: true,
		RunE:         runSimulation,
	}

	flags := cmd.Flags()
	flags.String("config", "", "YAML config file")
	flags.Int64("seed", 0, "random seed (0 selects the fixed default)")
	flags.Float64("confidence", stats.DefaultConfidence, "normal quantile z of the confidence interval")
	flags.Bool("json", false, "print the result as JSON")
	flags.Bool("thresholds", false, "also print every per-trial threshold")
	logger.AddFlags(logger.Config{Format: logger.FormatConsole}, flags)

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx = logging.WithLogger(ctx, log)

	res, err := simulate(ctx, cfg)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), res, cfg.Output)
}

// resolveConfig layers config file, environment, positional arguments and
// explicitly set flags, then validates the outcome.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if len(args) == 2 {
		if cfg.Grid, err = parsePositive("N", args[0]); err != nil {
			return nil, err
		}
		if cfg.Trials, err = parsePositive("T", args[1]); err != nil {
			return nil, err
		}
	}

	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("confidence") {
		cfg.Confidence, _ = flags.GetFloat64("confidence")
	}
	if flags.Changed("json") {
		cfg.Output.JSON, _ = flags.GetBool("json")
	}
	if flags.Changed("thresholds") {
		cfg.Output.Thresholds, _ = flags.GetBool("thresholds")
	}
	if flags.Changed("verbose") {
		cfg.Logging.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format, _ = flags.GetString("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

func parsePositive(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(errInvalidArgument, "%s must be an integer, got %q", name, raw)
	}
	if v <= 0 {
		return 0, errors.Wrapf(errInvalidArgument, "%s must be positive, got %d", name, v)
	}

	return v, nil
}

// simulate runs the trials described by cfg, logging progress from ctx's logger.
func simulate(ctx context.Context, cfg *config.Config) (*stats.Result, error) {
	log := logging.Get(ctx)
	log.Info("Starting simulation",
		zap.Int("grid", cfg.Grid),
		zap.Int("trials", cfg.Trials),
		zap.Int64("seed", cfg.Seed))

	res, err := stats.Run(cfg.Grid, cfg.Trials,
		stats.WithContext(ctx),
		stats.WithSeed(cfg.Seed),
		stats.WithConfidence(cfg.Confidence),
		stats.WithOnTrial(func(trial int, threshold float64) {
			log.Debug("Trial finished", zap.Int("trial", trial), zap.Float64("threshold", threshold))
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "simulation failed")
	}

	log.Info("Simulation finished",
		zap.Float64("mean", res.Mean),
		zap.Float64("stddev", res.StdDev))

	return res, nil
}
