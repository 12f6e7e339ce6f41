// Package testutil provides testing utilities for roaringview.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator for value sets and an encoder that
// writes fixture regions in both layout variants.
//
// # Random Sets
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Values(10000, 64) // sorted, unique, keys 0..63
//
// # Fixture Regions
//
//	data := testutil.NewFixture(true).
//	    Array(0, 1, 2, 3).
//	    Runs(7, testutil.Run{Start: 10, Length: 99}).
//	    Bytes()
//
//	legacy := testutil.FromValues(values, false)
package testutil
