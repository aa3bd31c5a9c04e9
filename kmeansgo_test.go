package kmeansgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeansgo/geometry"
)

func fourPoints() []geometry.Point {
	return []geometry.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
	}
}

func TestKMeans_Compute(t *testing.T) {
	km := New(WithWorkers(2), WithMinChunkSize(1))
	defer km.Close()

	centroids, assignments, err := km.Compute(fourPoints(), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{{X: 3, Y: 3}, {X: 10, Y: 10}}, centroids)
	assert.Equal(t, []uint8{0, 0, 0, 1}, assignments)
}

func TestKMeans_Sequential(t *testing.T) {
	km := New(WithSequential())
	defer km.Close()

	centroids, assignments, err := km.Compute(fourPoints(), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{{X: 3, Y: 3}, {X: 10, Y: 10}}, centroids)
	assert.Equal(t, []uint8{0, 0, 0, 1}, assignments)
}

func TestKMeans_Validation(t *testing.T) {
	km := New(WithSequential())
	defer km.Close()

	_, _, err := km.Compute(fourPoints(), 0, 3)
	assert.ErrorIs(t, err, ErrInvalidClusterCount)

	_, _, err = km.Compute(fourPoints(), MaxClusters+1, 3)
	assert.ErrorIs(t, err, ErrClusterCountOverflow)

	_, _, err = km.Compute(fourPoints(), 2, 0)
	assert.ErrorIs(t, err, ErrInvalidIterationCount)

	_, _, err = km.Compute(fourPoints(), 5, 3)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestKMeans_Init(t *testing.T) {
	km := New(WithWorkers(2), WithMinChunkSize(1))
	defer km.Close()

	require.NoError(t, km.Init(4, 2, 3))

	centroids, assignments, err := km.Compute(fourPoints(), 2, 3)
	require.NoError(t, err)
	assert.Len(t, centroids, 2)
	assert.Len(t, assignments, 4)
}

func TestKMeans_InitRejectsBadParams(t *testing.T) {
	km := New(WithSequential())
	defer km.Close()

	assert.ErrorIs(t, km.Init(4, 0, 3), ErrInvalidClusterCount)
	assert.ErrorIs(t, km.Init(4, 2, 0), ErrInvalidIterationCount)
	assert.ErrorIs(t, km.Init(1, 2, 3), ErrTooFewPoints)
}

func TestKMeans_Close(t *testing.T) {
	km := New(WithWorkers(2))
	km.Close()
	km.Close() // idempotent

	_, _, err := km.Compute(fourPoints(), 2, 3)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, km.Init(4, 2, 3), ErrClosed)
}

func TestKMeans_InputNotModified(t *testing.T) {
	km := New(WithSequential())
	defer km.Close()

	points := fourPoints()
	original := make([]geometry.Point, len(points))
	copy(original, points)

	_, _, err := km.Compute(points, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, original, points)
}

func TestKMeans_ParallelMatchesSequential(t *testing.T) {
	seq := New(WithSequential())
	defer seq.Close()
	par := New(WithWorkers(4), WithMinChunkSize(16))
	defer par.Close()

	points := make([]geometry.Point, 1000)
	for i := range points {
		// Deterministic spread with repeated coordinates to force ties.
		points[i] = geometry.Point{
			X: int64((i * 37) % 211),
			Y: int64((i * 101) % 197),
		}
	}

	wantC, wantA, err := seq.Compute(points, 13, 20)
	require.NoError(t, err)

	gotC, gotA, err := par.Compute(points, 13, 20)
	require.NoError(t, err)

	assert.Equal(t, wantC, gotC)
	assert.Equal(t, wantA, gotA)
}
