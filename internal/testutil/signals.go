// Package testutil holds shared helpers for the package tests.
package testutil

import (
	"math"

	"github.com/cwbudde/algo-sfx/sfx/rng"
)

// DeterministicSine returns length samples of a sine starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude) drawn
// from the package RNG, so it is stable across Go releases.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	r := rng.New(seed)
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * r.Float(-1, 1)
	}
	return out
}

// Impulse returns a unit impulse at pos. Out-of-range positions give silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
