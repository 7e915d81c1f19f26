package osc

import (
	"fmt"
	"math"
)

// Voice is a per-sample tone generator driven by frequency and duty cycle.
// Voices that have no duty control ignore the second argument.
type Voice interface {
	Next(freqHz, duty float64) float64
	Reset()
	Reseed(hash uint64)
}

func validateSampleRate(kind string, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%s sample rate must be > 0 and finite: %f", kind, sampleRate)
	}

	return nil
}

// advance moves phase by freqHz*dt and wraps it into [0, 1).
func advance(phase, freqHz, dt float64) float64 {
	phase += freqHz * dt
	if phase >= 1 || phase < 0 {
		phase -= math.Floor(phase)
		if phase >= 1 {
			phase = 0
		}
	}

	return phase
}
