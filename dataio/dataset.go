package dataio

import (
	"io"

	"github.com/hupe1980/kmeansgo/geometry"
	"github.com/hupe1980/kmeansgo/internal/mmap"
)

// Dataset is a loaded points file. Plain files are memory-mapped and the
// point slice aliases the mapping, so the Dataset must stay open while the
// points are in use; compressed files are decoded into heap memory.
type Dataset struct {
	Points  []geometry.Point
	mapping *mmap.Mapping
}

// OpenDataset loads the points file at path. Files ending in .zst or .lz4
// are decompressed; anything else is mapped zero-copy.
func OpenDataset(path string) (*Dataset, error) {
	if CompressionFor(path) != CompressionNone {
		var points []geometry.Point
		err := LoadFromFile(path, func(r io.Reader) error {
			return readCompressed(path, r, func(r io.Reader) error {
				var err error
				points, err = ReadAllPoints(r)
				return err
			})
		})
		if err != nil {
			return nil, err
		}
		return &Dataset{Points: points}, nil
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	// The engines scan points front to back every iteration.
	_ = m.Advise(mmap.AccessSequential)

	points, err := PointsFromBytes(m.Bytes())
	if err != nil {
		_ = m.Close()
		return nil, err
	}

	return &Dataset{Points: points, mapping: m}, nil
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	return len(d.Points)
}

// Close releases the underlying mapping, if any. The point slice must not
// be used afterwards for mapped datasets.
func (d *Dataset) Close() error {
	if d.mapping == nil {
		return nil
	}
	return d.mapping.Close()
}

// LoadPoints reads a full points file into heap memory, honoring the
// compression extension. Prefer OpenDataset for large plain files.
func LoadPoints(path string) ([]geometry.Point, error) {
	var points []geometry.Point
	err := LoadFromFile(path, func(r io.Reader) error {
		return readCompressed(path, r, func(r io.Reader) error {
			var err error
			points, err = ReadAllPoints(r)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// LoadAssignments reads a full assignments file, honoring the compression
// extension.
func LoadAssignments(path string) ([]uint8, error) {
	var assignments []uint8
	err := LoadFromFile(path, func(r io.Reader) error {
		return readCompressed(path, r, func(r io.Reader) error {
			var err error
			assignments, err = ReadAllAssignments(r)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
