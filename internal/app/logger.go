// SPDX-License-Identifier: MIT

package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the console logger used by the command. Logs go to stderr
// so that stdout carries only the edge list. Without verbose only warnings
// and errors are printed.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level.SetLevel(zapcore.DebugLevel)
		config.Sampling = nil // keep every per-edge entry
	}

	return config.Build()
}
