// File: utils/random_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandIsDeterministicForASeed(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d differs", i)
	}
}

func TestNewRandZeroSeedStillWorks(t *testing.T) {
	rng := NewRand(0)
	v := rng.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestRandomSign(t *testing.T) {
	rng := NewRand(7)
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		sign := RandomSign(rng)
		if sign != 1 && sign != -1 {
			t.Fatalf("RandomSign returned %v", sign)
		}
		seen[sign] = true
	}
	assert.Len(t, seen, 2, "both directions should appear over 200 draws")
}

func TestSpreadStaysInRange(t *testing.T) {
	rng := NewRand(3)
	for i := 0; i < 500; i++ {
		v := Spread(rng, 6)
		if v < -3 || v >= 3 {
			t.Fatalf("Spread(6) = %v, want [-3, 3)", v)
		}
	}
}
