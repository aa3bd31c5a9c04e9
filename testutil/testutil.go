package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/kmeansgo/geometry"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Points returns n points with coordinates uniform in [-bound, bound).
// Locks only once per call.
func (r *RNG) Points(n int, bound int64) []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geometry.Point, n)
	for i := range points {
		points[i] = geometry.Point{
			X: r.rand.Int63n(2*bound) - bound,
			Y: r.rand.Int63n(2*bound) - bound,
		}
	}
	return points
}

// Clustered returns n points grouped into k blobs. Blob centers are uniform
// in [-centerBound, centerBound) and members scatter within [-spread, spread)
// of their center. Useful for benchmarks that should resemble clusterable
// data rather than uniform noise.
func (r *RNG) Clustered(n, k int, centerBound, spread int64) []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([]geometry.Point, k)
	for i := range centers {
		centers[i] = geometry.Point{
			X: r.rand.Int63n(2*centerBound) - centerBound,
			Y: r.rand.Int63n(2*centerBound) - centerBound,
		}
	}

	points := make([]geometry.Point, n)
	for i := range points {
		c := centers[r.rand.Intn(k)]
		points[i] = geometry.Point{
			X: c.X + r.rand.Int63n(2*spread) - spread,
			Y: c.Y + r.rand.Int63n(2*spread) - spread,
		}
	}
	return points
}

// ExactAssignments computes the ground-truth nearest-centroid assignment for
// every point by exhaustive scan with lowest-index tie-breaking.
func ExactAssignments(points, centroids []geometry.Point) []uint8 {
	assignments := make([]uint8, len(points))
	for i, p := range points {
		best := 0
		bestDist := geometry.SquaredDistance(p, centroids[0])
		for j := 1; j < len(centroids); j++ {
			if d := geometry.SquaredDistance(p, centroids[j]); d < bestDist {
				best = j
				bestDist = d
			}
		}
		assignments[i] = uint8(best)
	}
	return assignments
}
