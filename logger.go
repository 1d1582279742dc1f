package fusion

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fusion-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKind adds the node kind to the logger.
func (l *Logger) WithKind(kind Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind.String()),
	}
}

// WithCapacity adds the node capacity to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(key uint64, size int, err error) {
	if err != nil {
		l.Error("insert failed",
			"key", key,
			"size", size,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"key", key,
			"size", size,
		)
	}
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(key uint64, removed bool, size int) {
	l.Debug("delete completed",
		"key", key,
		"removed", removed,
		"size", size,
	)
}

// LogReset logs a reset.
func (l *Logger) LogReset(dropped int) {
	l.Debug("reset completed",
		"dropped", dropped,
	)
}
