package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name     string
		p, c     Point
		expected int64
	}{
		{"Zero", Point{0, 0}, Point{0, 0}, 0},
		{"Axis", Point{0, 0}, Point{3, 4}, 25},
		{"Negative", Point{-3, -4}, Point{0, 0}, 25},
		{"Mixed", Point{10, -10}, Point{-10, 10}, 800},
		{"Symmetric", Point{7, 2}, Point{1, -5}, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SquaredDistance(tt.p, tt.c))
			assert.Equal(t, tt.expected, SquaredDistance(tt.c, tt.p))
		})
	}
}

func TestSquaredDistance_WideCoordinates(t *testing.T) {
	// A difference of 2^31 overflows a 32-bit product; the widened
	// arithmetic must not.
	p := Point{X: 1 << 30, Y: 1 << 30}
	c := Point{X: -(1 << 30), Y: 0}

	want := int64(1)<<62 + int64(1)<<60
	assert.Equal(t, want, SquaredDistance(p, c))
}

func TestNearestCentroid(t *testing.T) {
	centroids := []Point{{0, 0}, {10, 0}, {0, 10}}

	assert.Equal(t, 0, NearestCentroid(Point{1, 1}, centroids))
	assert.Equal(t, 1, NearestCentroid(Point{9, 1}, centroids))
	assert.Equal(t, 2, NearestCentroid(Point{1, 9}, centroids))
}

func TestNearestCentroid_TieBreak(t *testing.T) {
	// (5,0) is exactly equidistant from (0,0) and (10,0); the lower index
	// must win.
	centroids := []Point{{0, 0}, {10, 0}}
	assert.Equal(t, 0, NearestCentroid(Point{5, 0}, centroids))

	// Same tie with the order reversed still picks the first.
	centroids = []Point{{10, 0}, {0, 0}}
	assert.Equal(t, 0, NearestCentroid(Point{5, 0}, centroids))
}

func TestNearestCentroid_SingleCentroid(t *testing.T) {
	centroids := []Point{{42, -42}}
	assert.Equal(t, 0, NearestCentroid(Point{-100, 100}, centroids))
}
