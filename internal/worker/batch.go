package worker

import (
	"context"
	"errors"
	"fmt"
)

// RunAll runs tasks with at most concurrency in flight and returns one result
// per task in submission order. A task skipped because ctx was cancelled
// reports ctx.Err().
func RunAll(ctx context.Context, concurrency int, tasks ...Task) []Result {
	if len(tasks) == 0 {
		return []Result{}
	}

	pool := NewPool(ctx, concurrency)
	pool.Start()
	for _, t := range tasks {
		pool.Submit(t)
	}
	done := pool.Wait()

	results := make([]Result, len(tasks))
	seen := make([]bool, len(tasks))
	for _, r := range done {
		results[r.Index] = r
		seen[r.Index] = true
	}
	for i, t := range tasks {
		if !seen[i] {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			results[i] = Result{Name: t.Name, Index: i, Err: err}
		}
	}
	return results
}

// Errors joins every failed result as "name: err", nil when all succeeded
func Errors(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, r.Err))
		}
	}
	return errors.Join(errs...)
}
