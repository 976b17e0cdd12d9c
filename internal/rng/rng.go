// Package rng centralizes deterministic random generation for the
// stochastic path-search engines (genetic, antcolony, qlearning).
//
// Same seed ⇒ identical results. No time-based source is used anywhere;
// engines accept an injected *rand.Rand or build one here from a seed.
//
// math/rand.Rand is not goroutine-safe: give every concurrent search its own.
package rng

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Or returns r when non-nil, otherwise FromSeed(seed).
func Or(r *rand.Rand, seed int64) *rand.Rand {
	if r != nil {
		return r
	}
	return FromSeed(seed)
}

// SampleTwo draws two distinct indices uniformly from [0, n).
// n must be ≥ 2.
func SampleTwo(r *rand.Rand, n int) (int, int) {
	i := r.Intn(n)
	j := r.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
