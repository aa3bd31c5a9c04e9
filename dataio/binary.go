package dataio

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/hupe1980/kmeansgo/geometry"
)

var (
	// ErrTruncatedRecord is returned when a points file size is not a
	// multiple of the 16-byte record size.
	ErrTruncatedRecord = errors.New("dataio: truncated point record")

	// ErrMisaligned is returned when a byte block cannot be viewed as
	// point records without copying.
	ErrMisaligned = errors.New("dataio: data is not 8-byte aligned")
)

// pointBytes returns a raw byte view over the point slice. No allocation;
// the view aliases the slice memory.
func pointBytes(points []geometry.Point) []byte {
	if len(points) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&points[0])), len(points)*geometry.PointSize)
}

// PointsFromBytes views a raw byte block as point records without copying.
// The returned slice aliases data and shares its lifetime; callers keeping
// the points must keep the block alive (e.g. an open mmap).
func PointsFromBytes(data []byte) ([]geometry.Point, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data)%geometry.PointSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedRecord, len(data))
	}
	if uintptr(unsafe.Pointer(&data[0]))%unsafe.Alignof(geometry.Point{}) != 0 {
		return nil, ErrMisaligned
	}
	return unsafe.Slice((*geometry.Point)(unsafe.Pointer(&data[0])), len(data)/geometry.PointSize), nil
}

// WritePoints writes points as raw records.
func WritePoints(w io.Writer, points []geometry.Point) error {
	if len(points) == 0 {
		return nil
	}
	_, err := w.Write(pointBytes(points))
	return err
}

// ReadPoints reads exactly count point records.
func ReadPoints(r io.Reader, count int) ([]geometry.Point, error) {
	if count == 0 {
		return nil, nil
	}
	points := make([]geometry.Point, count)
	if _, err := io.ReadFull(r, pointBytes(points)); err != nil {
		return nil, err
	}
	return points, nil
}

// ReadAllPoints reads point records until EOF.
func ReadAllPoints(r io.Reader) ([]geometry.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data)%geometry.PointSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedRecord, len(data))
	}
	points := make([]geometry.Point, len(data)/geometry.PointSize)
	copy(pointBytes(points), data)
	return points, nil
}

// WriteAssignments writes one byte per point.
func WriteAssignments(w io.Writer, assignments []uint8) error {
	if len(assignments) == 0 {
		return nil
	}
	_, err := w.Write(assignments)
	return err
}

// ReadAllAssignments reads assignment bytes until EOF.
func ReadAllAssignments(r io.Reader) ([]uint8, error) {
	return io.ReadAll(r)
}
