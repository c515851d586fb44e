// Package parallel provides chunked fan-out helpers for row-wise matrix
// work. Callers hand in a worker for a half-open index range; the package
// takes care of splitting, spawning, and joining.
package parallel

import (
	"runtime"
	"sync"
)

// For splits [0, n) into one contiguous chunk per worker and runs fn on
// the chunks concurrently, blocking until all of them finish. The worker
// count is capped at GOMAXPROCS and at n. fn must be safe to run
// concurrently on disjoint ranges.
func For(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForThreshold runs fn over [0, n) on the calling goroutine when n is
// below threshold and fans out with For otherwise, so hot loops over
// small inputs keep their single-goroutine cost.
func ForThreshold(n, threshold int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if n < threshold {
		fn(0, n)
		return
	}
	For(n, fn)
}
