package engine

import "errors"

var (
	// ErrInvalidClusterCount is returned when k is zero or negative.
	ErrInvalidClusterCount = errors.New("cluster count must be positive")

	// ErrClusterCountOverflow is returned when k cannot be represented in
	// the uint8 assignment value.
	ErrClusterCountOverflow = errors.New("cluster count exceeds assignment range")

	// ErrInvalidIterationCount is returned when the iteration budget is zero
	// or negative.
	ErrInvalidIterationCount = errors.New("iteration count must be positive")

	// ErrTooFewPoints is returned when the input holds fewer points than
	// clusters, which would make first-k seeding read out of bounds.
	ErrTooFewPoints = errors.New("fewer input points than clusters")

	// ErrPoolClosed is returned when work is submitted to a closed pool.
	ErrPoolClosed = errors.New("worker pool is closed")
)
