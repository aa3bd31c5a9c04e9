// Package kmeansgo provides deterministic parallel k-means clustering for
// 2D integer points.
//
// # Quick Start
//
//	km := kmeansgo.New(kmeansgo.WithWorkers(8))
//	defer km.Close()
//
//	centroids, assignments, err := km.Compute(points, k, iters)
//
// The first k input points seed the centroids, the algorithm runs exactly
// iters refinement iterations, and every point is assigned to its nearest
// centroid by squared Euclidean distance with lowest-index tie-breaking.
// All arithmetic is fixed-width integer math, so the parallel engine
// produces output bit-identical to the sequential reference for any worker
// count.
//
// # Engines
//
//	// Parallel (default): phase-parallel assignment and centroid update
//	// over a fixed worker pool.
//	km := kmeansgo.New()
//
//	// Sequential reference implementation.
//	km := kmeansgo.New(kmeansgo.WithSequential())
//
// # Datasets
//
// Points, centroids and assignments use a flat binary layout (two
// little-endian int64 coordinates per point record, one byte per
// assignment). The dataio package loads plain files zero-copy via mmap and
// decompresses .zst/.lz4 datasets transparently; the blobstore package
// reads datasets from local disk, MinIO or S3.
package kmeansgo
