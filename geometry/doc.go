// Package geometry provides the 2D integer point primitives shared by all
// clustering engines: the point/centroid record type, squared Euclidean
// distance, and deterministic nearest-centroid search.
package geometry
