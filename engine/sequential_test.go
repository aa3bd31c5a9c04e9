package engine

import (
	"testing"

	"github.com/hupe1980/kmeansgo/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequential_FourPointScenario(t *testing.T) {
	// Seeds are (0,0) and (10,0). (0,10) is 100 from seed 0 and 200 from
	// seed 1, so cluster 0 collects three members whose truncated mean is
	// (3,3); cluster 1 keeps (10,10) alone.
	points := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}

	e := NewSequential()
	require.NoError(t, e.Init(len(points), 2, 1))

	centroids, assignments, err := e.Compute(points, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{{X: 3, Y: 3}, {X: 10, Y: 10}}, centroids)
	assert.Equal(t, []uint8{0, 0, 0, 1}, assignments)
}

func TestSequential_KEqualsPointCount(t *testing.T) {
	points := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}, {X: -100, Y: -100}}
	k := len(points)

	e := NewSequential()
	centroids, assignments, err := e.Compute(points, k, 10)
	require.NoError(t, err)

	// Every point is its own centroid immediately and nothing moves in
	// later iterations.
	assert.Equal(t, points, centroids)
	assert.Equal(t, []uint8{0, 1, 2, 3}, assignments)
}

func TestSequential_EmptyClusterKeepsCentroid(t *testing.T) {
	// Both seeds are (0,0); every point ties to index 0, so cluster 1 never
	// receives a member and its centroid must carry over unchanged.
	points := []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 5}}

	e := NewSequential()
	centroids, assignments, err := e.Compute(points, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{{X: 1, Y: 1}, {X: 0, Y: 0}}, centroids)
	assert.Equal(t, []uint8{0, 0, 0}, assignments)
}

func TestSequential_TruncatingMean(t *testing.T) {
	// -7/2 truncates toward zero to -3, not floor to -4.
	points := []geometry.Point{{X: -7, Y: 0}, {X: 0, Y: 0}}

	e := NewSequential()
	centroids, _, err := e.Compute(points, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{{X: -3, Y: 0}}, centroids)
}

func TestSequential_SeedingUsesFirstK(t *testing.T) {
	// With one iteration and every point sitting on a seed, the output is
	// exactly the first k input points.
	points := []geometry.Point{{X: 1, Y: 2}, {X: 30, Y: 40}, {X: 1, Y: 2}, {X: 30, Y: 40}}

	e := NewSequential()
	centroids, assignments, err := e.Compute(points, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{{X: 1, Y: 2}, {X: 30, Y: 40}}, centroids)
	assert.Equal(t, []uint8{0, 1, 0, 1}, assignments)
}

func TestSequential_ReinitReplacesStorage(t *testing.T) {
	points := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}

	e := NewSequential()
	require.NoError(t, e.Init(len(points), 4, 1))
	require.NoError(t, e.Init(len(points), 2, 1))

	centroids, assignments, err := e.Compute(points, 2, 1)
	require.NoError(t, err)
	assert.Len(t, centroids, 2)
	assert.Len(t, assignments, len(points))
}
