// Package rng provides the injected random source for dialogue
// generation. The same seed and call sequence always produce the same
// tree, so builder output is reproducible in tests.
package rng

import "math/rand"

// RNG wraps math/rand.Rand with deterministic position tracking.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a new deterministic RNG from a seed.
func New(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Index returns a random index in [0, n). n must be positive.
func (r *RNG) Index(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// IntRange returns a random integer in [min, max] inclusive.
// Returns min when max <= min.
func (r *RNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	r.pos++
	return min + r.src.Intn(max-min+1)
}

// Position returns the number of RNG calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// Pick returns a random element of items, or the zero value for an
// empty slice.
func Pick[T any](r *RNG, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Index(len(items))]
}
