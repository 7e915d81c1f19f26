package envelope

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/sfx/params"
)

// PitchCurve evaluates the instantaneous frequency of a sound.
type PitchCurve struct {
	pitch    params.Pitch
	duration float64
}

// NewPitchCurve returns the pitch curve of p over a sound of the given
// duration in seconds.
func NewPitchCurve(p params.Pitch, duration float64) PitchCurve {
	return PitchCurve{pitch: p, duration: duration}
}

// Cycle returns the normalized position in the current repeat cycle at time
// t. Without repetition the whole sound is one cycle and the result is
// clamped to [0, 1]. With repetition the normalized time t/duration is scaled
// by max(RepeatFrequency, 1/duration, 1) and wrapped, so the clock completes
// at least one full cycle over the sound. A non-positive duration yields 0.
func (c PitchCurve) Cycle(t float64) float64 {
	if c.duration <= 0 || math.IsNaN(c.duration) {
		return 0
	}

	norm := t / c.duration
	if c.pitch.RepeatFrequency <= 0 {
		return core.Clamp01(norm)
	}

	rate := math.Max(math.Max(c.pitch.RepeatFrequency, 1/c.duration), 1)

	return core.Fract(norm * rate)
}

// Evaluate returns the frequency in Hz at time t together with the repeat
// cycle position used to compute it.
func (c PitchCurve) Evaluate(t float64) (hz, cycle float64) {
	p := c.pitch
	cycle = c.Cycle(t)

	f := p.Frequency + cycle*p.FrequencySweep + cycle*cycle*p.FrequencyDeltaSweep
	if cycle > p.Jump1.Onset {
		f *= 1 + p.Jump1.Amount
	}

	if cycle > p.Jump2.Onset {
		f *= 1 + p.Jump2.Amount
	}

	if p.HasVibrato() {
		f += 1 - core.Lerp11(0, p.VibratoDepth, math.Sin(2*math.Pi*p.VibratoFrequency*t))
	}

	if !(f > 0) {
		f = 0
	}

	return f, cycle
}

// Duration returns the sound duration the curve was built for.
func (c PitchCurve) Duration() float64 { return c.duration }
