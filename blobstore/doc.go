// Package blobstore abstracts where dataset files live.
//
// A Store hands out read-only blobs by name and accepts whole-file writes.
// Built-in implementations cover the local filesystem (mmap-backed),
// in-memory storage for tests, MinIO, and Amazon S3. Remote datasets are
// downloaded to a local file with Fetch before clustering, since the engines
// scan every point every iteration.
package blobstore
