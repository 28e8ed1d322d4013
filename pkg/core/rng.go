package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeSeededRNG seeds the generator from the wall clock.
func NewTimeSeededRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float64 returns a value in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Bernoulli reports true with probability p. Values of p outside [0, 1] are
// clamped.
func (r *RNG) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
