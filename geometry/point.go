package geometry

// Point is a 2D point with signed 64-bit coordinates. The same type is used
// for input points and for cluster centroids.
//
// The in-memory layout (two consecutive little-endian int64 values, 16 bytes,
// no padding) is part of the persisted file format; dataio reads and writes
// []Point as raw byte blocks.
type Point struct {
	X, Y int64
}

// PointSize is the size of one encoded point record in bytes.
const PointSize = 16

// SquaredDistance returns the squared Euclidean distance between p and c.
// Coordinate differences are widened to 64-bit arithmetic before squaring,
// so differences that would overflow a 32-bit product are handled safely.
func SquaredDistance(p, c Point) int64 {
	dx := p.X - c.X
	dy := p.Y - c.Y
	return dx*dx + dy*dy
}

// NearestCentroid returns the index of the centroid closest to p.
//
// Ties are broken deterministically: the lowest index achieving the minimum
// distance wins. This ordering is observable (it decides which cluster an
// equidistant point lands in) and must match across engine implementations.
//
// Precondition: len(centroids) >= 1.
func NearestCentroid(p Point, centroids []Point) int {
	nearest := 0
	minDist := SquaredDistance(p, centroids[0])
	for i := 1; i < len(centroids); i++ {
		if d := SquaredDistance(p, centroids[i]); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}
