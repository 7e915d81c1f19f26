package filter

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/delay"
	"github.com/cwbudde/algo-sfx/sfx/envelope"
)

const (
	flangerMaxDelaySeconds = 0.1
	flangerFeedback        = 0.1
	flangerMix             = 0.5
)

// Flanger mixes the signal with a copy delayed by a swept offset in
// milliseconds. The offset is clamped to [0, 100] ms.
type Flanger struct {
	sampleRate float64
	sweep      envelope.Sweep
	line       *delay.Line
	delay      float64
}

// NewFlanger creates a flanger whose delay in milliseconds follows sweep.
func NewFlanger(sampleRate float64, sweep envelope.Sweep) (*Flanger, error) {
	if err := validateSampleRate("flanger", sampleRate); err != nil {
		return nil, err
	}

	line, err := delay.New(int(math.Ceil(flangerMaxDelaySeconds*sampleRate)) + 4)
	if err != nil {
		return nil, err
	}

	return &Flanger{sampleRate: sampleRate, sweep: sweep, line: line}, nil
}

// DelaySeconds returns the clamped delay at time t.
func (f *Flanger) DelaySeconds(t float64) float64 {
	return core.Clamp(f.sweep.Evaluate(t)/1000, 0, flangerMaxDelaySeconds)
}

// Process runs one sample at render time t.
func (f *Flanger) Process(x, t float64) float64 {
	f.delay = f.DelaySeconds(t) * f.sampleRate
	delayed := f.line.ReadFractional(f.delay)
	f.line.Write(core.FlushDenormals(x + flangerFeedback*delayed))

	return (1-flangerMix)*x + flangerMix*delayed
}

// Reset clears the delay line.
func (f *Flanger) Reset() {
	f.line.Reset()
	f.delay = 0
}

// DelaySamples returns the delay applied to the most recent sample.
func (f *Flanger) DelaySamples() float64 { return f.delay }
