// Package mmap provides read-only memory-mapped file access for zero-copy
// loading of point datasets.
//
// Dataset files are flat arrays of fixed-width records; mapping them avoids
// copying potentially gigabyte-sized inputs through read buffers. The API is
// unified across platforms: Unix uses mmap(2) with madvise(2) hints, Windows
// uses CreateFileMapping/MapViewOfFile (hints are a no-op).
//
// Mappings are safe for concurrent reads. Close is idempotent, but callers
// must not touch Bytes() after Close returns.
package mmap
