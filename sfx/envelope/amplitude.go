package envelope

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/sfx/params"
)

// AmplitudeCurve is the attack/sustain/decay envelope with punch and optional
// tremolo.
type AmplitudeCurve struct {
	amp params.Amplitude
}

// NewAmplitudeCurve returns the amplitude curve of a.
func NewAmplitudeCurve(a params.Amplitude) AmplitudeCurve {
	return AmplitudeCurve{amp: a}
}

// Evaluate returns the gain at time t in seconds.
func (c AmplitudeCurve) Evaluate(t float64) float64 {
	g := c.Shape(t)
	if c.amp.TremoloDepth > 0 {
		g *= Tremolo(c.amp.TremoloDepth, c.amp.TremoloFrequency, t)
	}

	return g
}

// Shape returns the envelope without tremolo.
func (c AmplitudeCurve) Shape(t float64) float64 {
	a := c.amp
	punched := 1 - a.Punch

	switch {
	case t < a.Attack:
		return core.Lerp(0, punched, t/a.Attack)
	case t < a.Attack+a.Sustain:
		if a.Punch > 0 {
			return core.Lerp(1, punched, (t-a.Attack)/a.Sustain)
		}

		return 1
	default:
		if a.Decay <= 0 || t >= a.Len() {
			return 0
		}

		return core.Clamp01(core.Lerp(punched, 0, (t-a.Attack-a.Sustain)/a.Decay))
	}
}

// Tremolo returns the amplitude modulation gain 1 - depth*(0.5+0.5cos(2πft)).
func Tremolo(depth, freqHz, t float64) float64 {
	return 1 - depth*(0.5+0.5*math.Cos(2*math.Pi*freqHz*t))
}
