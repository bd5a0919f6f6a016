package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Perturb scales every value by a factor drawn uniformly from
// [1-rel, 1+rel]. Zeros stay zero.
func (r *RNG) Perturb(buf []float64, rel float64) {
	for i := range buf {
		buf[i] *= 1 + rel*(2*r.r.Float64()-1)
	}
}
