package utils

import (
	"math"
	"math/rand"
	"time"
)

// RandSource is a seeded random number generator. It backs candidate
// sampling, permutation shuffles and dataset partitioning, so two searches
// constructed with the same seed draw identical sequences.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A zero seed falls back to the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// Uint64n returns a random uint64 in [0, n)
func (r *RandSource) Uint64n(n uint64) uint64 {
	return r.rng.Uint64() % n
}

// Shuffle pseudo-randomizes the order of n elements via the swap function
func (r *RandSource) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// LogUniformFloat64 returns a random number whose logarithm is uniform over
// [log(min), log(max)). Both bounds must be positive. The usual choice for
// scale parameters such as learning rates.
func (r *RandSource) LogUniformFloat64(min, max float64) float64 {
	return math.Exp(r.UniformFloat64(math.Log(min), math.Log(max)))
}
