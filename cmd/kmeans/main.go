// Command kmeans clusters a binary file of 2D integer points and writes the
// final centroids and per-point assignments.
//
//	kmeans [flags] <points_file> <k> <iters> <centroids_file> <assignments_file>
//
// The points file may be a local path (optionally .zst or .lz4 compressed)
// or a remote object (s3://bucket/key, minio://endpoint/bucket/key); remote
// objects are downloaded to a temporary file first. On success the elapsed
// computation time in milliseconds is printed to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	kmeansgo "github.com/hupe1980/kmeansgo"
	"github.com/hupe1980/kmeansgo/blobstore"
	miniostore "github.com/hupe1980/kmeansgo/blobstore/minio"
	s3store "github.com/hupe1980/kmeansgo/blobstore/s3"
	"github.com/hupe1980/kmeansgo/dataio"
	"github.com/hupe1980/kmeansgo/geometry"
)

const (
	maxIterations = 1000

	exitOK      = 0
	exitLoadErr = 1
	exitRunErr  = 2
)

func usage() {
	fmt.Fprintln(os.Stderr, "Arguments: [flags] <points_file> <k> <iters> <centroids_file> <assignments_file>")
	fmt.Fprintln(os.Stderr, "  <points_file>      - input file containing point coordinates (local path, s3:// or minio:// URL)")
	fmt.Fprintln(os.Stderr, "  <k>                - desired number of clusters (1-256)")
	fmt.Fprintln(os.Stderr, "  <iters>            - number of refining iterations (1-1000)")
	fmt.Fprintln(os.Stderr, "  <centroids_file>   - output file where final centroids are stored")
	fmt.Fprintln(os.Stderr, "  <assignments_file> - output file where final assignment is stored")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	debug := flag.Bool("debug", false, "enable debugging output")
	workers := flag.Int("workers", 0, "number of worker goroutines (0 = all CPUs)")
	sequential := flag.Bool("sequential", false, "use the single-threaded reference engine")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 5 {
		usage()
		return exitOK
	}

	k, errK := strconv.Atoi(args[1])
	iters, errI := strconv.Atoi(args[2])
	if errK != nil || errI != nil || k < 1 || k > kmeansgo.MaxClusters || iters < 1 || iters > maxIterations {
		usage()
		return exitOK
	}

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	logger := kmeansgo.NewTextLogger(level)

	ctx := context.Background()

	points, cleanup, err := loadPoints(ctx, args[0], logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		usage()
		return exitLoadErr
	}
	defer cleanup()

	if err := run(ctx, points, k, iters, args[3], args[4], *workers, *sequential, logger); err != nil {
		fmt.Println("FAILED")
		fmt.Fprintln(os.Stderr, err)
		return exitRunErr
	}
	return exitOK
}

func run(ctx context.Context, points []geometry.Point, k, iters int, centroidsFile, assignmentsFile string, workers int, sequential bool, logger *kmeansgo.Logger) error {
	opts := []kmeansgo.Option{
		kmeansgo.WithLogger(logger),
	}
	if sequential {
		opts = append(opts, kmeansgo.WithSequential())
	} else {
		opts = append(opts, kmeansgo.WithWorkers(workers))
	}

	km := kmeansgo.New(opts...)
	defer km.Close()

	start := time.Now()
	centroids, assignments, err := km.ComputeContext(ctx, points, k, iters)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Println(elapsed.Milliseconds())

	if err := dataio.SaveCentroids(centroidsFile, centroids); err != nil {
		logger.LogSave(ctx, centroidsFile, err)
		return err
	}
	logger.LogSave(ctx, centroidsFile, nil)

	if err := dataio.SaveAssignments(assignmentsFile, assignments); err != nil {
		logger.LogSave(ctx, assignmentsFile, err)
		return err
	}
	logger.LogSave(ctx, assignmentsFile, nil)

	return nil
}

// loadPoints resolves source to a point slice. Remote URLs are fetched into
// a temporary file which the returned cleanup removes; for local files the
// cleanup releases the mapping.
func loadPoints(ctx context.Context, source string, logger *kmeansgo.Logger) ([]geometry.Point, func(), error) {
	local := source
	cleanup := func() {}

	if strings.Contains(source, "://") && !strings.HasPrefix(source, "file://") {
		store, name, err := openRemote(ctx, source)
		if err != nil {
			return nil, nil, err
		}

		dir, err := os.MkdirTemp("", "kmeans-*")
		if err != nil {
			return nil, nil, err
		}
		local = filepath.Join(dir, filepath.Base(name))
		cleanup = func() { _ = os.RemoveAll(dir) }

		if err := blobstore.Fetch(ctx, store, name, local, blobstore.FetchOptions{}); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("fetch %s: %w", source, err)
		}
	}
	local = strings.TrimPrefix(local, "file://")

	ds, err := dataio.OpenDataset(local)
	if err != nil {
		cleanup()
		logger.LogLoad(ctx, source, 0, err)
		return nil, nil, err
	}
	logger.LogLoad(ctx, source, ds.Len(), nil)

	prev := cleanup
	return ds.Points, func() {
		_ = ds.Close()
		prev()
	}, nil
}

// openRemote builds a blob store for an s3:// or minio:// URL and returns
// the store plus the object name within it.
func openRemote(ctx context.Context, source string) (blobstore.Store, string, error) {
	scheme, rest, _ := strings.Cut(source, "://")
	switch scheme {
	case "s3":
		// s3://bucket/key
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || key == "" {
			return nil, "", fmt.Errorf("invalid S3 URL %q, want s3://bucket/key", source)
		}
		store, err := s3store.NewStoreFromEnv(ctx, bucket, "")
		if err != nil {
			return nil, "", err
		}
		return store, key, nil

	case "minio":
		// minio://endpoint/bucket/key with credentials from
		// MINIO_ACCESS_KEY / MINIO_SECRET_KEY.
		parts := strings.SplitN(rest, "/", 3)
		if len(parts) != 3 || parts[2] == "" {
			return nil, "", fmt.Errorf("invalid MinIO URL %q, want minio://endpoint/bucket/key", source)
		}
		client, err := minio.New(parts[0], &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: os.Getenv("MINIO_SECURE") == "true",
		})
		if err != nil {
			return nil, "", err
		}
		return miniostore.NewStore(client, parts[1], ""), parts[2], nil

	default:
		return nil, "", fmt.Errorf("unsupported URL scheme %q", scheme)
	}
}
