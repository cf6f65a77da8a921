package common

import "math"

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampInt is Clamp for ints.
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// FloorDiv divides n by d rounding toward negative infinity.
func FloorDiv(n, d int) int {
	return int(math.Floor(float64(n) / float64(d)))
}

// CeilDiv divides n by d rounding toward positive infinity.
func CeilDiv(n, d int) int {
	return int(math.Ceil(float64(n) / float64(d)))
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
