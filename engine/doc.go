// Package engine implements the k-means clustering engines.
//
// Two implementations exist behind the same Engine contract: Sequential, the
// single-threaded reference, and Parallel, which decomposes every iteration
// into a parallel assignment phase and a parallel centroid-update phase over
// a fixed worker pool. For identical inputs both produce bit-identical
// centroids and assignments regardless of worker count, because all cluster
// statistics are accumulated in fixed-width integer arithmetic (associative
// and commutative, no rounding) and ties in the nearest-centroid search are
// broken by index.
package engine
