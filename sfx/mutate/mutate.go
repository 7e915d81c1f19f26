// Package mutate derives new sound specs by nudging every parameter of an
// existing one within fixed bounds.
package mutate

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
)

const (
	// DefaultActivation is the chance that a field still at its default
	// value is mutated. Fields away from their default always are.
	DefaultActivation = 0.3
	// ToggleProbability is the chance of changing the waveform and of
	// flipping noise interpolation.
	ToggleProbability = 0.1
)

// Mutate returns a mutated copy of spec. The input is not modified and the
// seed is kept. The result depends only on spec and the state of r.
func Mutate(spec params.SoundSpec, r *rng.Rand) params.SoundSpec {
	out := spec.Clone()
	filters := out.EffectiveFilters()
	t := &target{spec: &out, filters: &filters}

	for _, f := range fields {
		old := f.get(t)
		p := 1.0
		if old == f.Default {
			p = DefaultActivation
		}

		if !r.Bool(p) {
			continue
		}

		f.set(t, f.step(old, r))
	}

	if r.Bool(ToggleProbability) {
		others := params.AllWaveforms &^ params.SetOf(out.Tone.Waveform)
		out.Tone.Waveform = params.PickWaveform(others, r)
	}

	if r.Bool(ToggleProbability) {
		out.Tone.InterpolateNoise = !out.Tone.InterpolateNoise
	}

	if spec.Filters == nil && filters.IsNeutral() {
		out.Filters = nil
	} else {
		out.Filters = &filters
	}

	return out
}

func (f Field) step(old float64, r *rng.Rand) float64 {
	if f.Integer {
		v := math.Round(old) + float64(r.Int(-1, 1))
		return core.Clamp(v, f.Min, f.Max)
	}

	span := f.Range()
	v := core.RoundTo(old+r.Float(-span, span), f.Step)

	return core.Clamp(v, f.Min, f.Max)
}

// MutateN returns n successive generations, each mutated from the previous
// one.
func MutateN(spec params.SoundSpec, r *rng.Rand, n int) []params.SoundSpec {
	out := make([]params.SoundSpec, 0, max(n, 0))
	for i := 0; i < n; i++ {
		spec = Mutate(spec, r)
		out = append(out, spec)
	}

	return out
}
