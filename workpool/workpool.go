// Package workpool runs independent, indexed units of work across a fixed number of workers.
package workpool

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// Number is any type that can be summed.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum evaluates fn for every index in [0, n) and returns the sum of the results.
//
// Each worker repeatedly claims the next unclaimed index from a shared counter, so every index
// is evaluated exactly once regardless of how long individual calls take. Partial sums are
// combined after all workers have returned. The first error cancels the context passed to the
// remaining calls and is returned.
//
// If workers is <= 0, runtime.GOMAXPROCS(0) workers are used.
func Sum[T Number](ctx context.Context, n, workers int, fn func(ctx context.Context, i int) (T, error)) (T, error) {
	var total T
	if n <= 0 {
		return total, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	var next atomic.Int64
	partials := make([]T, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := fn(ctx, i)
				if err != nil {
					return err
				}
				partials[w] += v
			}
		})
	}
	if err := g.Wait(); err != nil {
		return total, err
	}
	for _, partial := range partials {
		total += partial
	}
	return total, nil
}
