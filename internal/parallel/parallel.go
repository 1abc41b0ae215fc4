// Package parallel splits slice work across one goroutine per CPU.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"chunkwalk/internal/mathutil"
)

// Map calls fn for each item in parallel and returns the results in input order.
// Items not reached before ctx is cancelled keep the zero value.
func Map[T any, R any](ctx context.Context, items []T, fn func(T) R) []R {
	if len(items) == 0 {
		return nil
	}

	numWorkers := mathutil.IntMin(runtime.NumCPU(), len(items))
	chunkSize := mathutil.IntMax(1, len(items)/numWorkers)

	results := make([]R, len(items))
	var wg sync.WaitGroup

	for i := 0; i < len(items); i += chunkSize {
		start := i
		end := mathutil.IntMin(i+chunkSize, len(items))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					results[j] = fn(items[j])
				}
			}
		}(start, end)
	}

	wg.Wait()
	return results
}

// Sum maps every item and adds up the results.
func Sum[T any](ctx context.Context, items []T, fn func(T) int) int {
	total := 0
	for _, v := range Map(ctx, items, fn) {
		total += v
	}
	return total
}
