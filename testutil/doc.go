// Package testutil provides testing utilities for fusion nodes.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random keys, a reference ordered set to
// compare nodes against, and a runner for parallel randomized checks.
//
// # Random Key Generation
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(8)              // distinct, uniform over 64 bits
//	keys = rng.ClusteredKeys(8, 5)   // distinct, differing in 5 fixed bit positions
//
// # Reference Set (Ground Truth)
//
//	ref := testutil.NewReference(capacity)
//	ref.Insert(x)
//	ref.Rank(y) // number of keys < y
//
// # Parallel Cross Checks
//
//	err := testutil.CrossCheck(ctx, seeds, 4, func(ctx context.Context, rng *testutil.RNG) error {
//	    ...
//	})
package testutil
