package utils

import "math"

// Clamp limits v to [lo, hi]. When lo > hi, lo wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// AlmostEqual compares floats with an absolute tolerance.
func AlmostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// KeyDirection maps a key identifier to a paddle direction: -1 left, 1 right, 0 otherwise.
func KeyDirection(key string) int {
	switch key {
	case "ArrowLeft", "a":
		return -1
	case "ArrowRight", "d":
		return 1
	}
	return 0
}

// IsStartKey reports whether a key press starts or restarts a game.
func IsStartKey(key string) bool {
	return key == " " || key == "Enter"
}
