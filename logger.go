package weights

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with weight-table context.
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

// WithTable tags the logger with a table's geometry.
func (l *Logger) WithTable(slots uint64, strideShift uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("slots", slots, "stride_shift", strideShift),
	}
}

// LogAllocate logs the allocation of a table's private storage.
func (l *Logger) LogAllocate(ctx context.Context, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "allocate failed",
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "allocate completed",
			"bytes", bytes,
		)
	}
}

// LogShare logs a promotion to shared memory.
func (l *Logger) LogShare(ctx context.Context, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "share failed",
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "table moved to shared memory",
			"bytes", bytes,
		)
	}
}

// LogRelease logs the release of a table's storage.
func (l *Logger) LogRelease(ctx context.Context, bytes int64, shared bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "release failed",
			"bytes", bytes,
			"shared", shared,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "release completed",
			"bytes", bytes,
			"shared", shared,
		)
	}
}
