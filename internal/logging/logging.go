// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the vecgrid CLI.
// Library packages never log; only the command layer does.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger writing to stderr.
// verbose lowers the level to debug.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
