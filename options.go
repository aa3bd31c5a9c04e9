package kmeansgo

import (
	"log/slog"

	"github.com/hupe1980/kmeansgo/engine"
)

// Options configures a KMeans instance.
type Options struct {
	// Workers is the number of goroutines used by the parallel engine.
	// Default: runtime.GOMAXPROCS(0).
	Workers int

	// MinChunkSize is the smallest point range handed to a single worker
	// task. Default: engine.DefaultMinChunkSize.
	MinChunkSize int

	// Sequential selects the single-threaded reference engine instead of
	// the parallel one. Default: false.
	Sequential bool

	// Logger for structured logging. Default: NoopLogger().
	Logger *Logger
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Workers:      0, // resolved by the worker pool
		MinChunkSize: engine.DefaultMinChunkSize,
		Sequential:   false,
		Logger:       NoopLogger(),
	}
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers sets the number of worker goroutines for the parallel engine.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithMinChunkSize sets the minimum per-task point range for the parallel
// engine. Smaller values increase scheduling overhead but can improve load
// balance on small inputs.
func WithMinChunkSize(size int) Option {
	return func(o *Options) {
		o.MinChunkSize = size
	}
}

// WithSequential selects the single-threaded reference engine.
func WithSequential() Option {
	return func(o *Options) {
		o.Sequential = true
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithLogLevel enables text logging to stderr at the given level.
func WithLogLevel(level slog.Level) Option {
	return func(o *Options) {
		o.Logger = NewTextLogger(level)
	}
}
