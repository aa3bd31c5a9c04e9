package dataio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/kmeansgo/geometry"
)

// SaveToFile writes a file atomically: the content goes to a temp file in
// the target directory, is fsynced, then renamed over the target.
func SaveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0o644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = ""
	return nil
}

// LoadFromFile opens a file with a buffered reader and hands it to readFunc.
func LoadFromFile(filename string, readFunc func(io.Reader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewReaderSize(f, 256*1024)
	return readFunc(buf)
}

// SaveCentroids writes the centroid file, optionally compressed by
// extension (see CompressionFor).
func SaveCentroids(filename string, centroids []geometry.Point) error {
	return SaveToFile(filename, func(w io.Writer) error {
		return writeCompressed(filename, w, func(w io.Writer) error {
			return WritePoints(w, centroids)
		})
	})
}

// SaveAssignments writes the assignment file, optionally compressed by
// extension.
func SaveAssignments(filename string, assignments []uint8) error {
	return SaveToFile(filename, func(w io.Writer) error {
		return writeCompressed(filename, w, func(w io.Writer) error {
			return WriteAssignments(w, assignments)
		})
	})
}

// SavePoints writes a points file, optionally compressed by extension.
func SavePoints(filename string, points []geometry.Point) error {
	return SaveToFile(filename, func(w io.Writer) error {
		return writeCompressed(filename, w, func(w io.Writer) error {
			return WritePoints(w, points)
		})
	})
}
