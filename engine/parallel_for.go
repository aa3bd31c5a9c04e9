package engine

import "sync"

// forChunks splits the index range [0, n) into contiguous chunks, runs
// fn(task, start, end) for each chunk on the pool and blocks until every
// chunk has completed. It returns the number of tasks used.
//
// Chunks never overlap and task indices are dense in [0, tasks), so callers
// may use the task index to address per-task storage. The chunk span is at
// least minChunk items, which keeps tasks per call bounded by the pool size;
// small ranges degrade to a single inline call.
func forChunks(wp *WorkerPool, n, minChunk int, fn func(task, start, end int)) int {
	if n <= 0 {
		return 0
	}
	if minChunk < 1 {
		minChunk = 1
	}

	span := (n + wp.NumWorkers() - 1) / wp.NumWorkers()
	if span < minChunk {
		span = minChunk
	}
	numTasks := (n + span - 1) / span

	if numTasks <= 1 {
		fn(0, 0, n)
		return 1
	}

	var wg sync.WaitGroup
	wg.Add(numTasks)

	task := 0
	for start := 0; start < n; start += span {
		end := start + span
		if end > n {
			end = n
		}
		t, s, e := task, start, end
		if err := wp.Submit(func() {
			defer wg.Done()
			fn(t, s, e)
		}); err != nil {
			// Closed pool: run the chunk inline so the range is still
			// covered completely.
			fn(t, s, e)
			wg.Done()
		}
		task++
	}

	wg.Wait()
	return numTasks
}
