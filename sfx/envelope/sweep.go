package envelope

import "github.com/cwbudde/algo-sfx/dsp/core"

// Sweep is a linear parameter curve over normalized time:
// Start + Rate*t/Duration.
type Sweep struct {
	Start    float64
	Rate     float64
	Duration float64
}

// Evaluate returns the swept value at time t. With a non-positive duration
// the curve stays at Start.
func (s Sweep) Evaluate(t float64) float64 {
	if s.Duration <= 0 {
		return s.Start
	}

	return s.Start + s.Rate*t/s.Duration
}

// DutyCurve maps a square-wave duty setting and sweep onto the usable duty
// range [0.01, 0.99] as a function of the pitch repeat cycle.
type DutyCurve struct {
	Duty  float64
	Sweep float64
}

// Evaluate returns the duty cycle at the given repeat cycle position.
func (d DutyCurve) Evaluate(cycle float64) float64 {
	return core.Lerp(0.01, 0.99, core.Clamp01(d.Duty+d.Sweep*cycle))
}
