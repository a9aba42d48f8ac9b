// Package workerpool runs bounded parallel work over indexed items.
package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Each calls fn for every index in [0, n) on at most workers goroutines.
// Indices are handed out in ascending order. When calls fail, Each returns
// the error of the lowest failing index, so the result does not depend on
// scheduling; indices above it are not started.
func Each(ctx context.Context, workers, n int, fn func(context.Context, int) error) error {
	if n == 0 {
		return ctx.Err()
	}
	workers = max(1, min(workers, n))

	var (
		next     atomic.Int64
		mu       sync.Mutex
		failedAt = n
		failure  error
		wg       sync.WaitGroup
	)
	stopAt := func() int {
		mu.Lock()
		defer mu.Unlock()
		return failedAt
	}
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= stopAt() || ctx.Err() != nil {
					return
				}
				if err := fn(ctx, i); err != nil {
					mu.Lock()
					if i < failedAt {
						failedAt, failure = i, err
					}
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	if failure != nil {
		return failure
	}
	return ctx.Err()
}

// Process calls fn for every item with the ordering guarantees of Each.
func Process[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	return Each(ctx, workers, len(items), func(ctx context.Context, i int) error {
		return fn(ctx, items[i])
	})
}

// Map applies fn to every item and returns the results in input order.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	err := Each(ctx, workers, len(items), func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
