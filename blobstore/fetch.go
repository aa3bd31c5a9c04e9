package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// FetchOptions controls how a remote blob is downloaded.
type FetchOptions struct {
	// ChunkSize is the size of each ranged read. Defaults to 8 MiB.
	ChunkSize int64

	// Concurrency is the number of chunks fetched in parallel.
	// Defaults to 4.
	Concurrency int

	// BytesPerSec throttles the aggregate download rate.
	// 0 means unlimited.
	BytesPerSec int64
}

// Fetch downloads the named blob into the local file at dest. Chunks are
// read in parallel ranged requests and written at their final offsets; the
// file appears atomically via temp file and rename.
func Fetch(ctx context.Context, store Store, name, dest string, opts FetchOptions) error {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 8 << 20
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}

	var limiter *rate.Limiter
	if opts.BytesPerSec > 0 {
		// Burst must cover a full chunk or WaitN can never succeed.
		burst := opts.BytesPerSec
		if burst < opts.ChunkSize {
			burst = opts.ChunkSize
		}
		limiter = rate.NewLimiter(rate.Limit(opts.BytesPerSec), int(burst))
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return err
	}
	defer blob.Close()

	size := blob.Size()

	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".tmp-*")
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

	if err := tmp.Truncate(size); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for off := int64(0); off < size; off += opts.ChunkSize {
		off := off
		length := opts.ChunkSize
		if off+length > size {
			length = size - off
		}

		g.Go(func() error {
			if limiter != nil {
				if err := limiter.WaitN(gctx, int(length)); err != nil {
					return err
				}
			}

			buf := make([]byte, length)
			n, err := blob.ReadAt(gctx, buf, off)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			if int64(n) != length {
				return io.ErrUnexpectedEOF
			}

			_, err = tmp.WriteAt(buf, off)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return err
	}
	tmpName = ""
	return nil
}
