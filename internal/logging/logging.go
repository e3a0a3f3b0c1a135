/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging holds the process-wide diagnostic logger. User-facing
// output goes to stdout via fmt; diagnostic lines go through zap.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = newLogger(false)

// Configure rebuilds the process logger. Verbose enables debug-level output.
func Configure(verbose bool) {
	logger = newLogger(verbose)
}

// L returns the current diagnostic logger
func L() *zap.SugaredLogger {
	return logger
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	built, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return built.Sugar()
}
