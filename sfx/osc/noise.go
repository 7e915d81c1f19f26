package osc

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/sfx/rng"
)

// Noise is a sample-and-hold noise source. The input frequency sets how often
// a new random value is drawn: two values per period.
type Noise struct {
	dt          float64
	interpolate bool
	seed        uint64
	rand        *rng.Rand
	phase       float64
	prev, cur   float64
}

// NewNoise creates a noise source seeded with 0. With interpolate set, the
// output ramps linearly from the previous value to the current one.
func NewNoise(sampleRate float64, interpolate bool) (*Noise, error) {
	if err := validateSampleRate("noise", sampleRate); err != nil {
		return nil, err
	}

	n := &Noise{dt: 1 / sampleRate, interpolate: interpolate}
	n.Reseed(0)

	return n, nil
}

// Process advances one sample at rate freqHz.
func (n *Noise) Process(freqHz float64) float64 {
	n.phase += 2 * freqHz * n.dt
	if n.phase >= 1 {
		n.prev, n.cur = n.cur, n.draw()
	}

	if n.phase >= 1 || n.phase < 0 {
		n.phase -= math.Floor(n.phase)
	}

	if n.interpolate {
		return core.Lerp(n.prev, n.cur, n.phase)
	}

	return n.cur
}

// Next implements Voice.
func (n *Noise) Next(freqHz, _ float64) float64 {
	return n.Process(freqHz)
}

// Reseed replaces the private generator with one seeded from hash, then
// draws the initial held value from it.
func (n *Noise) Reseed(hash uint64) {
	n.seed = hash
	n.Reset()
}

// Reset restores the state right after the last Reseed.
func (n *Noise) Reset() {
	n.rand = rng.New(n.seed)
	n.phase = 0
	n.prev = 0
	n.cur = n.draw()
}

// Interpolate reports whether the output is linearly interpolated.
func (n *Noise) Interpolate() bool { return n.interpolate }

func (n *Noise) draw() float64 {
	return n.rand.Float(-1, 1)
}
