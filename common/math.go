package common

import "math"

// Lerp blends linearly from a (t=0) to b (t=1).
func Lerp(a, b, t float64) float64 {
	return b*t + a*(1-t)
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
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
