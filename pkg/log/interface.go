// Package log provides a structured logging interface for glmkit operations.
//
// The package defines a minimal logging interface with structured key-value
// fields, a zerolog-backed implementation, and a capture logger for tests.
// Libraries stay silent by default: estimators use the no-op logger unless a
// caller injects a real one.
//
// Example usage:
//
//	logger := log.NewLogger(os.Stderr, log.LevelInfo).With(
//	    log.ModelNameKey, "GLM",
//	)
//	logger.Info("fit complete",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 5000,
//	)
package log

import (
	"context"
)

// Logger is the structured logging interface used throughout glmkit.
//
// Fields are alternating key-value pairs, keys rendered with fmt. Error
// values are given structured treatment by the zerolog implementation,
// including stack trace extraction for cockroachdb/errors chains.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs conditions that are suspicious but not fatal.
	Warn(msg string, fields ...any)

	// Error logs failures. If a field value is an error, the implementation
	// may attach stack trace information automatically.
	Error(msg string, fields ...any)

	// With returns a new Logger that includes the given fields in every
	// subsequent log entry.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to avoid building expensive field values that would be dropped.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level. Values are compatible with slog.Level
// so callers can translate directly if they bridge to the standard library.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
