// Package dataio reads and writes the flat binary dataset files shared with
// the clustering core.
//
// The on-disk layout has no headers or separators: a points or centroids
// file is a dense array of 16-byte records (x then y, little-endian int64),
// an assignments file is one byte per point. Records are read and written as
// raw byte blocks over the in-memory slices, so file contents and memory
// contents are identical.
//
// Plain point files are loaded zero-copy via mmap. Files with a .zst or
// .lz4 extension are decompressed transparently.
package dataio
