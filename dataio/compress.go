package dataio

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the codec used for a dataset file.
type Compression int

const (
	// CompressionNone stores raw records.
	CompressionNone Compression = iota
	// CompressionZstd wraps the records in a zstd stream (.zst).
	CompressionZstd
	// CompressionLZ4 wraps the records in an lz4 frame (.lz4).
	CompressionLZ4
)

// CompressionFor returns the codec implied by the filename extension.
func CompressionFor(filename string) Compression {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// writeCompressed runs writeFunc against w, wrapping it in the compressor
// implied by filename.
func writeCompressed(filename string, w io.Writer, writeFunc func(io.Writer) error) error {
	switch CompressionFor(filename) {
	case CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err := writeFunc(enc); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		if err := writeFunc(lw); err != nil {
			_ = lw.Close()
			return err
		}
		return lw.Close()
	default:
		return writeFunc(w)
	}
}

// readCompressed runs readFunc against r, wrapping it in the decompressor
// implied by filename.
func readCompressed(filename string, r io.Reader, readFunc func(io.Reader) error) error {
	switch CompressionFor(filename) {
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return err
		}
		defer dec.Close()
		return readFunc(dec)
	case CompressionLZ4:
		return readFunc(lz4.NewReader(r))
	default:
		return readFunc(r)
	}
}
