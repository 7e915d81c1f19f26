package filter

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/sfx/envelope"
)

const (
	minCrushBits = 1
	maxCrushBits = 16
)

// Quantize maps s from [-1, 1] onto 2^bits levels.
func Quantize(s float64, bits int) float64 {
	levels := math.Ldexp(1, bits)
	return -1 + 2*math.Round((0.5+0.5*s)*levels)/levels
}

// BitCrush quantizes the signal to a swept bit depth.
type BitCrush struct {
	sweep envelope.Sweep
	bits  int
}

// NewBitCrush creates a bit crusher whose depth in bits follows sweep.
func NewBitCrush(sweep envelope.Sweep) *BitCrush {
	return &BitCrush{sweep: sweep}
}

// Bits returns the effective bit depth at time t, rounded and clamped to
// [1, 16].
func (c *BitCrush) Bits(t float64) int {
	return int(core.Clamp(math.Round(c.sweep.Evaluate(t)), minCrushBits, maxCrushBits))
}

// Process quantizes x at render time t.
func (c *BitCrush) Process(x, t float64) float64 {
	c.bits = c.Bits(t)
	return Quantize(x, c.bits)
}

// LastBits returns the depth applied to the most recent sample.
func (c *BitCrush) LastBits() int { return c.bits }

// Compress applies the power-law curve sign(s)*|s|^c.
func Compress(s, c float64) float64 {
	if s >= 0 {
		return math.Pow(s, c)
	}

	return -math.Pow(-s, c)
}
