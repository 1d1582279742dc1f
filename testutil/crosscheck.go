package testutil

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CrossCheck runs fn once per seed, at most limit at a time, each with its own
// RNG. It returns the first error, annotated with the failing seed, and
// cancels the context passed to the remaining runs.
func CrossCheck(ctx context.Context, seeds []int64, limit int, fn func(ctx context.Context, rng *RNG) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, NewRNG(seed)); err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// Seeds returns n consecutive seeds starting at base.
func Seeds(base int64, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}
	return seeds
}
