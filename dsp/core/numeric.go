package core

import "math"

// Clamp limits value to the inclusive range [min, max].
// NaN inputs collapse to min so downstream stages never see NaN.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min || math.IsNaN(value) {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Clamp01 limits value to [0, 1].
func Clamp01(value float64) float64 {
	return Clamp(value, 0, 1)
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Lerp11 interpolates between a and b with t in [-1, 1].
func Lerp11(a, b, t float64) float64 {
	return Lerp(a, b, 0.5+0.5*t)
}

// Fract returns the fractional part of x in [0, 1), also for negative x.
func Fract(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}

	return f
}

// RoundTo rounds value to the nearest multiple of step.
// A non-positive step leaves value unchanged.
func RoundTo(value, step float64) float64 {
	if step <= 0 {
		return value
	}

	return math.Round(value/step) * step
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Filter states decaying towards silence would otherwise crawl through
// the denormal range.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
