package engine

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_ExecutesAllTasks(t *testing.T) {
	wp := NewWorkerPool(4)
	defer wp.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup

	const tasks = 100
	wg.Add(tasks)
	for i := 0; i < tasks; i++ {
		require.NoError(t, wp.Submit(func() {
			defer wg.Done()
			counter.Add(1)
		}))
	}
	wg.Wait()

	assert.Equal(t, int64(tasks), counter.Load())
}

func TestWorkerPool_DefaultSize(t *testing.T) {
	wp := NewWorkerPool(0)
	defer wp.Close()

	assert.Greater(t, wp.NumWorkers(), 0)
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()

	err := wp.Submit(func() {})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	wp.Close() // must not panic or deadlock
}

func TestForChunks_CoversRange(t *testing.T) {
	wp := NewWorkerPool(4)
	defer wp.Close()

	const n = 1000
	seen := make([]atomic.Bool, n)

	numTasks := forChunks(wp, n, 10, func(task, start, end int) {
		for i := start; i < end; i++ {
			if seen[i].Swap(true) {
				t.Errorf("index %d visited twice", i)
			}
		}
	})

	assert.LessOrEqual(t, numTasks, wp.NumWorkers())
	for i := range seen {
		assert.Truef(t, seen[i].Load(), "index %d not visited", i)
	}
}

func TestForChunks_TaskIndicesAreDense(t *testing.T) {
	wp := NewWorkerPool(4)
	defer wp.Close()

	var mu sync.Mutex
	tasks := map[int]bool{}

	numTasks := forChunks(wp, 100, 10, func(task, start, end int) {
		mu.Lock()
		tasks[task] = true
		mu.Unlock()
	})

	assert.Len(t, tasks, numTasks)
	for i := 0; i < numTasks; i++ {
		assert.True(t, tasks[i])
	}
}

func TestForChunks_SmallRangeRunsInline(t *testing.T) {
	wp := NewWorkerPool(4)
	defer wp.Close()

	numTasks := forChunks(wp, 5, 100, func(task, start, end int) {
		assert.Equal(t, 0, task)
		assert.Equal(t, 0, start)
		assert.Equal(t, 5, end)
	})
	assert.Equal(t, 1, numTasks)
}

func TestForChunks_EmptyRange(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	numTasks := forChunks(wp, 0, 1, func(task, start, end int) {
		t.Error("callback must not run for an empty range")
	})
	assert.Equal(t, 0, numTasks)
}
