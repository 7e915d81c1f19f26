// Package filter implements the post-envelope processing stages of the
// sound-effect synthesizer: flanger, bit crusher, one-pole low- and
// high-pass filters with swept cutoff, power-law compression and the
// pink and brown noise coloring filters.
//
// Swept stages take the absolute render time with every sample and evaluate
// their parameter curve themselves. All stages clamp their effective
// parameters and never fail once constructed.
package filter

import (
	"fmt"
	"math"
)

func validateSampleRate(kind string, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%s sample rate must be > 0 and finite: %f", kind, sampleRate)
	}

	return nil
}
