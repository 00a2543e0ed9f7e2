// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by percstats and carries it in
// a context via github.com/outofforest/logger.
package logging

import (
	"context"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolation/internal/config"
)

// New returns a logger for cfg, encoded as cfg.Format and enabled at debug
// level when cfg.Verbose is set.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	lc, err := loggerConfig(cfg)
	if err != nil {
		return nil, err
	}

	return logger.New(lc), nil
}

// loggerConfig maps the percstats logging section onto logger.Config.
// logger.New panics on an unknown format, so the format is checked here.
func loggerConfig(cfg config.LoggingConfig) (logger.Config, error) {
	var format logger.Format
	switch cfg.Format {
	case config.LogFormatConsole:
		format = logger.FormatConsole
	case config.LogFormatJSON:
		format = logger.FormatJSON
	default:
		return logger.Config{}, errors.Errorf("unknown log format %q", cfg.Format)
	}

	return logger.Config{Format: format, Verbose: cfg.Verbose}, nil
}

// WithLogger returns a copy of ctx carrying log.
func WithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return logger.WithLogger(ctx, log)
}

// Get returns the logger stored in ctx, or a no-op logger if there is none.
func Get(ctx context.Context) *zap.Logger {
	if log := logger.Get(ctx); log != nil {
		return log
	}

	return zap.NewNop()
}
