// Package testutil provides testing utilities for sightline.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG plus generators for random points and random
// walled maps used by the property tests.
//
// # Random Maps
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.WalledMap(20, 12, 0.25) // '#' border, '.' floor, random pillars
//	for _, p := range testutil.Floor(rows) {
//	    ...
//	}
package testutil
