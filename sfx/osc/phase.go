package osc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// Shape maps a normalized phase to an output sample.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeTriangle
	ShapeSaw
	ShapeTangent
	ShapeWhistle
	ShapeBreaker
)

var breakerOffset = math.Sqrt(0.75)

func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeTriangle:
		return "triangle"
	case ShapeSaw:
		return "saw"
	case ShapeTangent:
		return "tangent"
	case ShapeWhistle:
		return "whistle"
	case ShapeBreaker:
		return "breaker"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Eval returns the waveform value at phase p in [0, 1).
func (s Shape) Eval(p float64) float64 {
	switch s {
	case ShapeTriangle:
		switch {
		case p < 0.25:
			return 4 * p
		case p < 0.75:
			return 2 - 4*p
		default:
			return -4 + 4*p
		}
	case ShapeSaw:
		if p < 0.5 {
			return 2 * p
		}

		return -2 + 2*p
	case ShapeTangent:
		return core.Clamp(0.3*math.Tan(math.Pi*p), -2, 2)
	case ShapeWhistle:
		return 0.75*math.Sin(2*math.Pi*p) + 0.25*math.Sin(20*math.Pi*p)
	case ShapeBreaker:
		q := core.Fract(p + breakerOffset)
		return -0.1 + 2*math.Abs(1-2*q*q)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// Phase is a phase-accumulating oscillator with a fixed waveform shape.
type Phase struct {
	shape Shape
	dt    float64
	phase float64
}

// NewPhase creates an oscillator of the given shape.
func NewPhase(shape Shape, sampleRate float64) (*Phase, error) {
	if err := validateSampleRate("phase oscillator", sampleRate); err != nil {
		return nil, err
	}

	if shape < ShapeSine || shape > ShapeBreaker {
		return nil, fmt.Errorf("phase oscillator shape out of range: %d", int(shape))
	}

	return &Phase{shape: shape, dt: 1 / sampleRate}, nil
}

// Process advances the phase by one sample at freqHz and returns the output.
func (o *Phase) Process(freqHz float64) float64 {
	o.phase = advance(o.phase, freqHz, o.dt)
	return o.shape.Eval(o.phase)
}

// Next implements Voice.
func (o *Phase) Next(freqHz, _ float64) float64 {
	return o.Process(freqHz)
}

// Reset rewinds the phase to zero.
func (o *Phase) Reset() {
	o.phase = 0
}

// Reseed restarts the oscillator. Tonal oscillators always start at phase 0.
func (o *Phase) Reseed(uint64) {
	o.Reset()
}

// Shape returns the configured waveform shape.
func (o *Phase) Shape() Shape { return o.shape }

// Phase returns the current normalized phase.
func (o *Phase) Phase() float64 { return o.phase }
