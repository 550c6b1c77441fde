package zap

import "go.uber.org/zap"

// NewLogger returns a sugared zap logger. Debug mode uses the
// development config, which includes debug-level output.
func NewLogger(debug bool) *zap.SugaredLogger {
	var logger *zap.Logger
	if debug {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger.Sugar()
}
