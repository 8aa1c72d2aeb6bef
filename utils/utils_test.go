package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyDirection(t *testing.T) {
	testCases := map[string]int{
		"ArrowLeft":  -1,
		"a":          -1,
		"ArrowRight": 1,
		"d":          1,
		"ArrowUp":    0,
		"A":          0,
		"":           0,
	}

	for input, expected := range testCases {
		result := KeyDirection(input)
		if result != expected {
			t.Errorf("KeyDirection(%q) = %d, want %d", input, result, expected)
		}
	}
}

func TestIsStartKey(t *testing.T) {
	assert.True(t, IsStartKey(" "))
	assert.True(t, IsStartKey("Enter"))
	assert.False(t, IsStartKey("Escape"))
	assert.False(t, IsStartKey("space"))
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"Inside", 5, 0, 10, 5},
		{"Below", -3, 0, 10, 0},
		{"Above", 12, 0, 10, 10},
		{"On upper bound", 10, 0, 10, 10},
		{"Inverted bounds", 5, 8, 2, 8},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clamp(tc.v, tc.lo, tc.hi))
		})
	}
}

func TestDistance(t *testing.T) {
	testCases := []struct {
		x1, y1, x2, y2 float64
		expected       float64
	}{
		{0, 0, 3, 4, 5},
		{1, 1, 1, 1, 0},
		{-1, -1, 2, 3, 5},
	}
	for _, tc := range testCases {
		result := Distance(tc.x1, tc.y1, tc.x2, tc.y2)
		if math.Abs(result-tc.expected) > 1e-12 {
			t.Errorf("Distance(%v, %v, %v, %v) = %v, want %v", tc.x1, tc.y1, tc.x2, tc.y2, result, tc.expected)
		}
	}
}

func TestLerpAndAlmostEqual(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(10, 20, 0))
	assert.True(t, AlmostEqual(0.1+0.2, 0.3, 1e-9))
	assert.False(t, AlmostEqual(1, 1.1, 1e-9))
}
