package synth

import (
	"time"

	"github.com/cwbudde/algo-vecmath"
)

// Buffer holds rendered mono samples.
type Buffer struct {
	Samples    []float64
	SampleRate float64
}

// Len returns the number of samples.
func (b Buffer) Len() int { return len(b.Samples) }

// Duration returns the playback length.
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(len(b.Samples)) / b.SampleRate * float64(time.Second))
}

// Peak returns the largest absolute sample value.
func (b Buffer) Peak() float64 {
	if len(b.Samples) == 0 {
		return 0
	}

	return vecmath.MaxAbs(b.Samples)
}

// Float32 converts the samples to float32.
func (b Buffer) Float32() []float32 {
	out := make([]float32, len(b.Samples))
	for i, v := range b.Samples {
		out[i] = float32(v)
	}

	return out
}

// Interleave duplicates every sample into the given number of channels.
// Channel counts below 1 are treated as 1.
func (b Buffer) Interleave(channels int) []float64 {
	if channels < 1 {
		channels = 1
	}

	out := make([]float64, len(b.Samples)*channels)
	for i, v := range b.Samples {
		frame := out[i*channels : (i+1)*channels]
		for c := range frame {
			frame[c] = v
		}
	}

	return out
}
