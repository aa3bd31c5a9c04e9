package s3

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping S3 integration test: S3_BUCKET not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test-kmeansgo-%d/", time.Now().UnixNano())

	store, err := NewStoreFromEnv(ctx, bucket, prefix)
	require.NoError(t, err)

	data := make([]byte, 1<<20)
	for i := range data {
		data[i] = byte(i)
	}

	require.NoError(t, store.Put(ctx, "points.bin", data))
	defer func() { _ = store.Delete(ctx, "points.bin") }()

	blob, err := store.Open(ctx, "points.bin")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 4096)
	n, err := blob.ReadAt(ctx, buf, 1<<19)
	require.NoError(t, err)
	assert.Equal(t, 4096, n)
	assert.Equal(t, data[1<<19:1<<19+4096], buf)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "points.bin")
}
