package kmeansgo

import (
	"errors"

	"github.com/hupe1980/kmeansgo/engine"
)

var (
	// ErrInvalidClusterCount is returned when k is zero or negative.
	ErrInvalidClusterCount = engine.ErrInvalidClusterCount

	// ErrClusterCountOverflow is returned when k exceeds MaxClusters, the
	// largest value representable in a one-byte assignment.
	ErrClusterCountOverflow = engine.ErrClusterCountOverflow

	// ErrInvalidIterationCount is returned when the iteration count is zero
	// or negative.
	ErrInvalidIterationCount = engine.ErrInvalidIterationCount

	// ErrTooFewPoints is returned when the input holds fewer than k points.
	ErrTooFewPoints = engine.ErrTooFewPoints

	// ErrClosed is returned when operating on a closed KMeans instance.
	ErrClosed = errors.New("kmeansgo: closed")

	// ErrResultShape is returned when an engine produces output whose shape
	// does not match the input. It indicates a bug in the engine.
	ErrResultShape = errors.New("kmeansgo: result shape mismatch")
)
