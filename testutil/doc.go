// Package testutil provides testing utilities for kmeansgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic random point sets and
// for computing ground-truth assignments.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.Points(10000, 1<<20)       // uniform in [-bound, bound)
//	points = rng.Clustered(10000, 16, 1000)  // k Gaussian-ish blobs
//
// # Ground Truth
//
//	want := testutil.ExactAssignments(points, centroids)
package testutil
