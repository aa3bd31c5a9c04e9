package kmeansgo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/kmeansgo/engine"
	"github.com/hupe1980/kmeansgo/geometry"
)

// MaxClusters is the largest supported cluster count. Assignments occupy a
// single byte per point, so cluster indices must fit in uint8.
const MaxClusters = engine.MaxClusters

// KMeans clusters 2D integer points with Lloyd's algorithm over a fixed
// iteration budget. The zero value is not usable; construct with New.
//
// A KMeans instance is safe for sequential reuse across inputs of different
// sizes. Concurrent calls to Compute on the same instance are not supported;
// use one instance per goroutine.
type KMeans struct {
	eng    engine.Engine
	opts   Options
	closed bool
}

// New creates a KMeans instance. By default it uses the parallel engine
// with one worker per CPU.
func New(optFns ...Option) *KMeans {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	var eng engine.Engine
	if opts.Sequential {
		eng = engine.NewSequential()
	} else {
		eng = engine.NewParallel(opts.Workers, opts.MinChunkSize)
	}

	return &KMeans{
		eng:  eng,
		opts: opts,
	}
}

// Init validates parameters and pre-allocates engine storage for a run over
// pointCount points with k clusters and iters iterations. Calling Init is
// optional; Compute validates and allocates on its own.
func (km *KMeans) Init(pointCount, k, iters int) error {
	if km.closed {
		return ErrClosed
	}
	return km.eng.Init(pointCount, k, iters)
}

// Compute runs iters iterations of k-means over points and returns the final
// centroids and the per-point cluster assignments. The input slice is not
// modified. The first k points seed the centroids.
func (km *KMeans) Compute(points []geometry.Point, k, iters int) ([]geometry.Point, []uint8, error) {
	return km.ComputeContext(context.Background(), points, k, iters)
}

// ComputeContext is Compute with logging context. The computation itself is
// not cancelable; ctx only flows into log records.
func (km *KMeans) ComputeContext(ctx context.Context, points []geometry.Point, k, iters int) ([]geometry.Point, []uint8, error) {
	if km.closed {
		return nil, nil, ErrClosed
	}

	start := time.Now()
	centroids, assignments, err := km.eng.Compute(points, k, iters)
	km.opts.Logger.LogCompute(ctx, len(points), k, iters, time.Since(start), err)
	if err != nil {
		return nil, nil, err
	}

	if len(centroids) != k {
		return nil, nil, fmt.Errorf("%w: got %d centroids, want %d", ErrResultShape, len(centroids), k)
	}
	if len(assignments) != len(points) {
		return nil, nil, fmt.Errorf("%w: got %d assignments, want %d", ErrResultShape, len(assignments), len(points))
	}

	return centroids, assignments, nil
}

// Close releases the worker pool. After Close, Init and Compute return
// ErrClosed. Close is idempotent.
func (km *KMeans) Close() {
	if km.closed {
		return
	}
	km.closed = true
	if p, ok := km.eng.(*engine.Parallel); ok {
		p.Close()
	}
}
