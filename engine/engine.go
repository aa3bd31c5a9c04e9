package engine

import (
	"fmt"

	"github.com/hupe1980/kmeansgo/geometry"
)

// MaxClusters is the largest supported cluster count. Assignments are stored
// as one uint8 per point, so cluster indices must fit in [0, 256).
const MaxClusters = 256

// Engine is the clustering contract shared by all implementations.
//
// Init pre-allocates per-cluster working storage for the given problem shape
// and must be called before Compute. Re-initializing with a different k fully
// replaces the prior storage. Compute runs the complete iteration budget and
// returns the final centroids (length k) and the assignment of every input
// point to its nearest centroid after the last iteration (length
// len(points), values in [0, k)).
//
// Both methods reject malformed configurations (k outside [1, MaxClusters],
// a non-positive iteration budget, or fewer points than clusters) with one of
// the sentinel errors from this package; no partial results are ever
// produced.
type Engine interface {
	Init(pointCount, k, iters int) error
	Compute(points []geometry.Point, k, iters int) ([]geometry.Point, []uint8, error)
}

// validate checks the configuration shared by Init and Compute entry points.
func validate(pointCount, k, iters int) error {
	if k <= 0 {
		return fmt.Errorf("%w: k=%d", ErrInvalidClusterCount, k)
	}
	if k > MaxClusters {
		return fmt.Errorf("%w: k=%d, max=%d", ErrClusterCountOverflow, k, MaxClusters)
	}
	if iters <= 0 {
		return fmt.Errorf("%w: iters=%d", ErrInvalidIterationCount, iters)
	}
	if pointCount < k {
		return fmt.Errorf("%w: points=%d, k=%d", ErrTooFewPoints, pointCount, k)
	}
	return nil
}

// seedCentroids copies the first k input points into a fresh centroid slice.
func seedCentroids(points []geometry.Point, k int) []geometry.Point {
	centroids := make([]geometry.Point, k)
	copy(centroids, points[:k])
	return centroids
}
