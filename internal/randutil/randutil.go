// Package randutil provides the random sampling primitives used by the
// genetic operators: uniform scalars and unique index draws.
//
// Every function takes an explicit *rand.Rand so callers control seeding and
// results stay reproducible.
package randutil

import (
	"fmt"
	"math/rand"
)

// Uniform returns a value uniformly distributed in [min, max).
func Uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// Indices returns count distinct integers drawn uniformly from [0, limit),
// in random order. Uniqueness is guaranteed: the draw is a partial
// Fisher-Yates shuffle, never rejection sampling, so duplicates cannot
// reduce the result below count.
//
// Panics when count is negative or exceeds limit.
func Indices(rng *rand.Rand, count, limit int) []int {
	if count < 0 || count > limit {
		panic(fmt.Sprintf("randutil: cannot draw %d unique indices from [0,%d)", count, limit))
	}
	pool := make([]int, limit)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rng.Intn(limit-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count]
}
