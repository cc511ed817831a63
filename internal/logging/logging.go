// Package logging sets up the file-backed logger. The terminal belongs to the
// UI, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFile is the log file used when none is given
const DefaultFile = "cinefind.log"

// New builds a logger appending to path and installs it as the zap global.
// The returned function flushes and restores the previous globals.
func New(path string, debug bool) (*zap.Logger, func(), error) {
	if path == "" {
		path = DefaultFile
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	restore := zap.ReplaceGlobals(logger)
	return logger, func() {
		_ = logger.Sync()
		restore()
	}, nil
}
