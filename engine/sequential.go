package engine

import (
	"github.com/hupe1980/kmeansgo/geometry"
)

// Sequential is the single-threaded reference engine.
//
// It is both a usable implementation and the baseline the Parallel engine
// is tested against: for any input, Parallel must reproduce Sequential's
// output value for value.
type Sequential struct {
	sums   []geometry.Point
	counts []int64
}

// NewSequential creates a sequential engine.
func NewSequential() *Sequential {
	return &Sequential{}
}

// Init pre-allocates the per-cluster sum and count accumulators.
func (e *Sequential) Init(pointCount, k, iters int) error {
	if err := validate(pointCount, k, iters); err != nil {
		return err
	}
	e.ensureStorage(k)
	return nil
}

// ensureStorage sizes the accumulators to k, replacing storage from any
// earlier Init with a different k.
func (e *Sequential) ensureStorage(k int) {
	if len(e.sums) != k {
		e.sums = make([]geometry.Point, k)
		e.counts = make([]int64, k)
	}
}

// Compute runs the full iteration budget and returns the final centroids and
// assignments.
func (e *Sequential) Compute(points []geometry.Point, k, iters int) ([]geometry.Point, []uint8, error) {
	if err := validate(len(points), k, iters); err != nil {
		return nil, nil, err
	}
	e.ensureStorage(k)

	centroids := seedCentroids(points, k)
	assignments := make([]uint8, len(points))

	for iter := 0; iter < iters; iter++ {
		for i := 0; i < k; i++ {
			e.sums[i] = geometry.Point{}
			e.counts[i] = 0
		}

		for i, p := range points {
			nearest := geometry.NearestCentroid(p, centroids)
			assignments[i] = uint8(nearest)
			e.sums[nearest].X += p.X
			e.sums[nearest].Y += p.Y
			e.counts[nearest]++
		}

		for i := 0; i < k; i++ {
			if e.counts[i] == 0 {
				// Empty cluster keeps its previous centroid.
				continue
			}
			centroids[i].X = e.sums[i].X / e.counts[i]
			centroids[i].Y = e.sums[i].Y / e.counts[i]
		}
	}

	return centroids, assignments, nil
}
