// Package testutil provides testing utilities for lazysorted.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG and generators for the fixture shapes the test
// suite leans on: shuffled permutations and duplicate-heavy value sets.
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Perm(1000)                    // shuffled 0..999
//	ys := rng.IntsWithDuplicates(1000, 10)  // 1000 draws from 10 values
package testutil
