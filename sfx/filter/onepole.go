package filter

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/sfx/envelope"
)

// EffectiveCutoff clamps a requested cutoff to [0, sampleRate/2]. NaN maps
// to 0.
func EffectiveCutoff(cutoffHz, sampleRate float64) float64 {
	return core.Clamp(cutoffHz, 0, sampleRate/2)
}

// onePole is a first-order low-pass with a per-sample cutoff. The smoothing
// coefficient is only recomputed when the cutoff changes.
type onePole struct {
	sampleRate float64
	cutoff     float64
	alpha      float64
	state      float64
}

func newOnePole(sampleRate float64) onePole {
	return onePole{sampleRate: sampleRate, cutoff: -1}
}

func (f *onePole) process(x, cutoffHz float64) float64 {
	fc := EffectiveCutoff(cutoffHz, f.sampleRate)
	if fc != f.cutoff {
		f.cutoff = fc
		f.alpha = 1 - math.Exp(-2*math.Pi*fc/f.sampleRate)
	}

	f.state += f.alpha * (x - f.state)
	f.state = core.FlushDenormals(f.state)

	return f.state
}

func (f *onePole) reset() {
	f.state = 0
}

// LowPass is a one-pole low-pass filter whose cutoff follows a linear sweep.
type LowPass struct {
	lp    onePole
	sweep envelope.Sweep
}

// NewLowPass creates a low-pass filter with cutoff curve sweep in Hz.
func NewLowPass(sampleRate float64, sweep envelope.Sweep) (*LowPass, error) {
	if err := validateSampleRate("low-pass", sampleRate); err != nil {
		return nil, err
	}

	return &LowPass{lp: newOnePole(sampleRate), sweep: sweep}, nil
}

// Process filters x at render time t.
func (f *LowPass) Process(x, t float64) float64 {
	return f.lp.process(x, f.sweep.Evaluate(t))
}

// Reset clears the filter state.
func (f *LowPass) Reset() { f.lp.reset() }

// Cutoff returns the clamped cutoff applied to the most recent sample, or -1
// before the first sample.
func (f *LowPass) Cutoff() float64 { return f.lp.cutoff }

// HighPass is a one-pole high-pass filter whose cutoff follows a linear
// sweep. At 0 Hz it passes the input unchanged.
type HighPass struct {
	lp    onePole
	sweep envelope.Sweep
}

// NewHighPass creates a high-pass filter with cutoff curve sweep in Hz.
func NewHighPass(sampleRate float64, sweep envelope.Sweep) (*HighPass, error) {
	if err := validateSampleRate("high-pass", sampleRate); err != nil {
		return nil, err
	}

	return &HighPass{lp: newOnePole(sampleRate), sweep: sweep}, nil
}

// Process filters x at render time t.
func (f *HighPass) Process(x, t float64) float64 {
	return x - f.lp.process(x, f.sweep.Evaluate(t))
}

// Reset clears the filter state.
func (f *HighPass) Reset() { f.lp.reset() }

// Cutoff returns the clamped cutoff applied to the most recent sample, or -1
// before the first sample.
func (f *HighPass) Cutoff() float64 { return f.lp.cutoff }
