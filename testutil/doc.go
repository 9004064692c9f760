// Package testutil provides testing utilities for weight tables.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	rng.FillUniformRange(w.Slice(), -1, 1)
//	idx := rng.Indices(1000)          // raw 64-bit feature hashes
//	hot := rng.ZipfIndices(1000, 512, 1.2) // skewed feature hits
package testutil
