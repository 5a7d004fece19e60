package vmath

import "math"

// Scalar helpers shared by the vector types

// Snappedf rounds value to the nearest multiple of step
// Halfway cases round away from zero. A zero step returns value unchanged
func Snappedf(value, step float64) float64 {
	if step == 0 {
		return value
	}
	return math.Round(value/step) * step
}

// PosMod returns the canonical modulo: the result has the sign of b
// PosMod(-20, 7) is 1 where (-20)%7 is -6
func PosMod(a, b int32) int32 {
	r := a % b
	if (r < 0 && b > 0) || (r > 0 && b < 0) {
		r += b
	}
	return r
}

// PosModf is PosMod for float64
func PosModf(a, b float64) float64 {
	r := math.Mod(a, b)
	if (r < 0 && b > 0) || (r > 0 && b < 0) {
		r += b
	}
	return r
}

// Clampi limits v to [lo, hi]
func Clampi(v, lo, hi int32) int32 {
	return min(max(v, lo), hi)
}

// Clampf limits v to [lo, hi]
func Clampf(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Lerpf interpolates from a to b by t (0 = a, 1 = b)
func Lerpf(a, b, t float64) float64 {
	return a + (b-a)*t
}
