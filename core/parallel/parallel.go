// Package parallel provides chunked worker helpers for data-parallel loops.
//
// Batched kernel evaluation issues many independent pointwise calls, so the
// row loops of a covariance build can be split across CPU cores without any
// synchronization beyond the final join.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items contiguous indices into per-core chunks and runs
// fn(start, end) for each chunk on its own goroutine, returning after all
// chunks complete. fn must not touch indices outside [start, end).
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last chunk absorbs the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items is at or below
// threshold, and falls back to Parallelize above it. Small batches are not
// worth the goroutine overhead.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
