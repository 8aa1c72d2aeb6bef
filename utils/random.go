// File: utils/random.go
package utils

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed generator. A zero seed is replaced by one derived
// from the clock; pass a fixed seed for reproducible games.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSign returns -1 or 1 with equal probability.
func RandomSign(rng *rand.Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// Spread returns a value uniformly distributed in [-size/2, size/2).
func Spread(rng *rand.Rand, size float64) float64 {
	return (rng.Float64() - 0.5) * size
}
