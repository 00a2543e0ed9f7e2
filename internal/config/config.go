// SPDX-License-Identifier: MIT

// Package config provides configuration loading for the percstats command.
// Values are resolved in order: defaults, an optional YAML file, environment
// variables, then command-line flags (applied by the caller).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/percolation/stats"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed       = "PERCSTATS_SEED"
	EnvConfidence = "PERCSTATS_CONFIDENCE"
	EnvLogFormat  = "PERCSTATS_LOG_FORMAT"
	EnvVerbose    = "PERCSTATS_VERBOSE"
)

// Log formats accepted by Logging.Format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config contains all percstats settings.
type Config struct {
	// Grid is the side length N of the simulated grid.
	Grid int `json:"grid" yaml:"grid"`

	// Trials is the number of independent experiments T.
	Trials int `json:"trials" yaml:"trials"`

	// Seed feeds the random generator; 0 selects the fixed default seed.
	Seed int64 `json:"seed" yaml:"seed"`

	// Confidence is the normal quantile z of the reported interval.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Output controls how results are printed.
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging controls operational logging on stderr.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// OutputConfig configures result printing.
type OutputConfig struct {
	// JSON prints the full result as a JSON document instead of text.
	JSON bool `json:"json" yaml:"json"`

	// Thresholds includes every per-trial threshold in text output.
	Thresholds bool `json:"thresholds" yaml:"thresholds"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Format is "console" (default) or "json".
	Format string `json:"format" yaml:"format"`

	// Verbose enables debug-level logs, including one line per trial.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// Default returns a Config with sensible defaults. Grid and Trials are left
// at zero: they must come from the file or the command line.
func Default() *Config {
	return &Config{
		Confidence: stats.DefaultConfidence,
		Logging: LoggingConfig{
			Format: LogFormatConsole,
		},
	}
}

// Load returns defaults overlaid with the YAML file at path (skipped when
// path is empty) and then with environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables resolved by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", EnvSeed)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvConfidence); ok && v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", EnvConfidence)
		}
		c.Confidence = z
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		c.Logging.Verbose = v == "true" || v == "1"
	}

	return nil
}

// Validate checks that the configuration can drive a simulation.
func (c *Config) Validate() error {
	if c.Grid <= 0 {
		return errors.Errorf("grid size must be positive, got %d", c.Grid)
	}
	if c.Trials <= 0 {
		return errors.Errorf("trial count must be positive, got %d", c.Trials)
	}
	if !(c.Confidence > 0) {
		return errors.Errorf("confidence quantile must be positive, got %v", c.Confidence)
	}
	switch c.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return errors.Errorf("invalid log format: %q (valid: console, json)", c.Logging.Format)
	}

	return nil
}
