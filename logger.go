package kmeansgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kmeansgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogCompute logs a completed (or failed) clustering run.
func (l *Logger) LogCompute(ctx context.Context, points, k, iters int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compute failed",
			"points", points,
			"k", k,
			"iters", iters,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compute completed",
			"points", points,
			"k", k,
			"iters", iters,
			"elapsed_ms", elapsed.Milliseconds(),
		)
	}
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, filename string, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset load failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dataset loaded",
			"filename", filename,
			"points", points,
		)
	}
}

// LogSave logs an output file write.
func (l *Logger) LogSave(ctx context.Context, filename string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "file saved",
			"filename", filename,
		)
	}
}
