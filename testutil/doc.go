// Package testutil provides testing utilities for bitset.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random bitsets and for running
// property checks over many seeds in parallel.
//
// # Random Bitsets
//
//	rng := testutil.NewRNG(seed)
//	b := rng.Bitset(256, 0.3) // bits in [0, 256) set with p=0.3
//
// # Property Sweeps
//
//	err := testutil.Sweep(ctx, 64, func(ctx context.Context, rng *testutil.RNG) error {
//	    a, b := rng.Bitset(200, 0.5), rng.Bitset(200, 0.5)
//	    if !a.Union(b).Equal(b.Union(a)) {
//	        return fmt.Errorf("seed %d: union not commutative", rng.Seed())
//	    }
//	    return nil
//	})
package testutil
