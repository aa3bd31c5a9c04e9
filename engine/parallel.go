package engine

import (
	"github.com/hupe1980/kmeansgo/geometry"
)

// DefaultMinChunkSize is the minimum number of points a Phase A task
// processes. Below this, goroutine handoff costs more than the work itself.
const DefaultMinChunkSize = 1024

// Parallel is the concurrent engine. Each iteration runs two data-parallel
// phases separated by barriers:
//
//   - Phase A partitions the point range into contiguous chunks. Every task
//     assigns its points against the iteration-start centroid snapshot
//     (read-only during the phase), writes the disjoint assignment slots it
//     owns and accumulates per-cluster sums and counts into task-local
//     arrays. No shared mutable state, so no locks.
//   - Phase B partitions the cluster range. Every cluster's statistics are
//     reduced across the task-local partials, and its centroid is written by
//     exactly one task. Integer addition is associative and commutative, so
//     the reduction grouping cannot change the result.
//
// The barriers are the only blocking points: Phase B never observes a
// partially populated accumulator and iteration i+1 never reads centroids
// before iteration i finished updating them. The output is therefore
// bit-identical to Sequential for any worker count.
type Parallel struct {
	pool     *WorkerPool
	minChunk int

	// Task-local accumulators, one slot per pool worker (Phase A never uses
	// more tasks than workers). Allocated by Init, reused every iteration.
	partialSums   [][]geometry.Point
	partialCounts [][]int64
}

// NewParallel creates a concurrent engine running on numWorkers pool
// workers. numWorkers <= 0 selects GOMAXPROCS, minChunkSize <= 0 selects
// DefaultMinChunkSize.
func NewParallel(numWorkers, minChunkSize int) *Parallel {
	if minChunkSize <= 0 {
		minChunkSize = DefaultMinChunkSize
	}
	return &Parallel{
		pool:     NewWorkerPool(numWorkers),
		minChunk: minChunkSize,
	}
}

// Close shuts down the worker pool. The engine must not be used afterwards.
func (e *Parallel) Close() {
	e.pool.Close()
}

// NumWorkers returns the size of the underlying pool.
func (e *Parallel) NumWorkers() int {
	return e.pool.NumWorkers()
}

// Init pre-allocates the task-local accumulator arrays for k clusters.
func (e *Parallel) Init(pointCount, k, iters int) error {
	if err := validate(pointCount, k, iters); err != nil {
		return err
	}
	e.ensureStorage(k)
	return nil
}

func (e *Parallel) ensureStorage(k int) {
	if len(e.partialSums) == e.pool.NumWorkers() && len(e.partialSums[0]) == k {
		return
	}
	e.partialSums = make([][]geometry.Point, e.pool.NumWorkers())
	e.partialCounts = make([][]int64, e.pool.NumWorkers())
	for t := range e.partialSums {
		e.partialSums[t] = make([]geometry.Point, k)
		e.partialCounts[t] = make([]int64, k)
	}
}

// Compute runs the full iteration budget and returns the final centroids and
// assignments.
func (e *Parallel) Compute(points []geometry.Point, k, iters int) ([]geometry.Point, []uint8, error) {
	if err := validate(len(points), k, iters); err != nil {
		return nil, nil, err
	}
	e.ensureStorage(k)

	centroids := seedCentroids(points, k)
	assignments := make([]uint8, len(points))

	for iter := 0; iter < iters; iter++ {
		// Phase A: parallel assignment.
		numTasks := forChunks(e.pool, len(points), e.minChunk, func(task, start, end int) {
			sums := e.partialSums[task]
			counts := e.partialCounts[task]
			for i := range sums {
				sums[i] = geometry.Point{}
				counts[i] = 0
			}
			for i := start; i < end; i++ {
				p := points[i]
				nearest := geometry.NearestCentroid(p, centroids)
				assignments[i] = uint8(nearest)
				sums[nearest].X += p.X
				sums[nearest].Y += p.Y
				counts[nearest]++
			}
		})

		// forChunks returned, so every Phase A task has completed: the
		// barrier before Phase B.

		// Phase B: parallel centroid update.
		forChunks(e.pool, k, 1, func(_, start, end int) {
			for c := start; c < end; c++ {
				var sum geometry.Point
				var count int64
				for t := 0; t < numTasks; t++ {
					sum.X += e.partialSums[t][c].X
					sum.Y += e.partialSums[t][c].Y
					count += e.partialCounts[t][c]
				}
				if count == 0 {
					// Empty cluster keeps its previous centroid.
					continue
				}
				centroids[c].X = sum.X / count
				centroids[c].Y = sum.Y / count
			}
		})
	}

	return centroids, assignments, nil
}
