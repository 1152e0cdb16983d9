// Package logging provides the shared zap logger setup for the pipeline.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field keys shared across pipeline stages.
const (
	FieldCorrelationID = "correlation_id"
	FieldResumeID      = "resume_id"
	FieldFileType      = "file_type"
	FieldMethod        = "method"
)

// New builds a production logger, or a development logger when verbose
// is set. Construction cannot fail with the options used here, but the
// error is surfaced anyway so callers stay honest.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return cfg.Build()
	}
	return zap.NewProduction()
}

// OrNop returns the logger unchanged, or a no-op logger when nil.
// Components accept nil loggers so tests stay quiet by default.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Run returns the standard fields identifying one pipeline run.
func Run(correlationID, resumeID string) []zap.Field {
	return []zap.Field{
		zap.String(FieldCorrelationID, correlationID),
		zap.String(FieldResumeID, resumeID),
	}
}
