package core

import "math/rand/v2"

// RNG is a deterministic pseudo-random stream. It is not safe for concurrent
// use; give every goroutine its own stream.
type RNG struct {
	pcg *rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	pcg := rand.NewPCG(uint64(seed), 0)
	return &RNG{pcg: pcg, r: rand.New(pcg)}
}

// Reseed restarts the stream as if freshly created with seed.
func (r *RNG) Reseed(seed int64) {
	r.pcg.Seed(uint64(seed), 0)
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a uniform float64 in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }
