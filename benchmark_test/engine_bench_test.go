package kmeansgo_bench_test

import (
	"fmt"
	"testing"

	kmeansgo "github.com/hupe1980/kmeansgo"
	"github.com/hupe1980/kmeansgo/testutil"
)

// BenchmarkSequential measures the reference engine across input sizes.
func BenchmarkSequential(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			points := testutil.NewRNG(42).Clustered(n, 16, 1<<20, 1000)

			km := kmeansgo.New(kmeansgo.WithSequential())
			defer km.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := km.Compute(points, 16, 10); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkParallel measures the concurrent engine across worker counts.
func BenchmarkParallel(b *testing.B) {
	points := testutil.NewRNG(42).Clustered(100000, 16, 1<<20, 1000)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			km := kmeansgo.New(kmeansgo.WithWorkers(workers))
			defer km.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := km.Compute(points, 16, 10); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkParallelClusterCounts varies k at a fixed input size.
func BenchmarkParallelClusterCounts(b *testing.B) {
	points := testutil.NewRNG(42).Points(100000, 1<<20)

	for _, k := range []int{2, 16, 64, 256} {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			km := kmeansgo.New()
			defer km.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := km.Compute(points, k, 5); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
