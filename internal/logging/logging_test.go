package logging

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/outofforest/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolation/internal/config"
)

// captureStderr redirects os.Stderr while fn runs and returns what was written.
// logger.New resolves "stderr" when the logger is built, so fn must build it.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	return string(out)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		wantDebug bool
	}{
		{"console", config.LoggingConfig{Format: config.LogFormatConsole}, false},
		{"console verbose", config.LoggingConfig{Format: config.LogFormatConsole, Verbose: true}, true},
		{"json", config.LoggingConfig{Format: config.LogFormatJSON}, false},
		{"json verbose", config.LoggingConfig{Format: config.LogFormatJSON, Verbose: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.True(t, log.Core().Enabled(zap.InfoLevel))
			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zap.DebugLevel))
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(config.LoggingConfig{Format: "yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestLoggerConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggingConfig
		want logger.Config
	}{
		{"console", config.LoggingConfig{Format: config.LogFormatConsole},
			logger.Config{Format: logger.FormatConsole}},
		{"console verbose", config.LoggingConfig{Format: config.LogFormatConsole, Verbose: true},
			logger.Config{Format: logger.FormatConsole, Verbose: true}},
		{"json", config.LoggingConfig{Format: config.LogFormatJSON},
			logger.Config{Format: logger.FormatJSON}},
		{"json verbose", config.LoggingConfig{Format: config.LogFormatJSON, Verbose: true},
			logger.Config{Format: logger.FormatJSON, Verbose: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loggerConfig(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Encoding(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		out := captureStderr(t, func() {
			log, err := New(config.LoggingConfig{Format: config.LogFormatConsole, Verbose: verbose})
			require.NoError(t, err)
			log.Info("Starting simulation", zap.Int("grid", 4))
		})
		line := strings.TrimSpace(out)
		assert.Contains(t, line, "\tinfo\t", "verbose=%v", verbose)
		assert.Contains(t, line, "Starting simulation", "verbose=%v", verbose)
		assert.NotContains(t, line, "- log:", "verbose=%v", verbose)
		assert.False(t, strings.HasPrefix(line, "{"), "verbose=%v", verbose)
		assert.Equal(t, 1, strings.Count(out, "\n"), "verbose=%v", verbose)
	}

	for _, verbose := range []bool{false, true} {
		out := captureStderr(t, func() {
			log, err := New(config.LoggingConfig{Format: config.LogFormatJSON, Verbose: verbose})
			require.NoError(t, err)
			log.Info("Starting simulation", zap.Int("grid", 4))
		})
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &entry), "verbose=%v", verbose)
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "Starting simulation", entry["msg"])
		assert.EqualValues(t, 4, entry["grid"])
	}
}

func TestContextRoundTrip(t *testing.T) {
	log := zap.NewNop()
	ctx := WithLogger(context.Background(), log)
	assert.Same(t, log, Get(ctx))
}

func TestGet_NoLogger(t *testing.T) {
	log := Get(context.Background())
	require.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Info("Starting simulation")
		log.Debug("Trial finished")
	})
}
