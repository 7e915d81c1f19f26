package preset

import (
	"math"

	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
)

// Envelope segment flags drawn by RandomSpec.
const (
	segAttackA = 1 << iota
	segAttackB
	segSustain
	segDecay
)

// RandomSpec samples across the whole parameter space. Unlike the other
// categories it may engage every stage, including the bit crusher, and it
// can produce inaudible results.
func RandomSpec(r *rng.Rand) params.SoundSpec {
	var amp params.Amplitude

	segments := r.Int(3, 16)
	if segments&segAttackA != 0 && segments&segAttackB != 0 {
		amp.Attack = r.Float(0, 2)
	}

	if segments&segSustain != 0 {
		amp.Sustain = r.Float01()
		amp.Punch = punch(r)
	}

	if segments&segDecay != 0 {
		amp.Decay = r.Float(0, 5)
	}

	if r.Bool(0.5) {
		amp.TremoloDepth = r.Float01()
		amp.TremoloFrequency = r.Float(0, 1000)
	}

	f := params.DefaultFilters()
	if r.Bool(0.5) {
		f.FlangerOffset = r.Float(0, 50)
		if r.Bool(0.5) {
			f.FlangerOffsetSweep = r.Float(-50, 50)
		}
	}

	if r.Bool(0.2) {
		f.BitCrush = float64(r.Int(1, 16))
		if r.Bool(0.5) {
			f.BitCrushSweep = float64(r.Int(-16, 16))
		}
	}

	// Low-pass and high-pass stay exclusive. Both engaged with crossing
	// cutoffs would mostly render silence.
	if r.Bool(0.5) {
		f.LowPassCutoff = r.Float(0, 10000)
		if r.Bool(0.5) {
			f.LowPassSweep = r.Float(-nyquist, nyquist)
		}
	} else if r.Bool(0.5) {
		f.HighPassCutoff = r.Float(0, 10000)
		if r.Bool(0.5) {
			f.HighPassSweep = r.Float(-nyquist, nyquist)
		}
	}

	if r.Bool(0.5) {
		f.Compression = r.Float(0.5, 2)
	}

	pitch := params.Pitch{Frequency: r.Float(10, 10000)}
	if r.Bool(0.5) {
		pitch.FrequencySweep = r.Float(-10000, 10000)
	}

	if r.Bool(0.5) {
		pitch.FrequencyDeltaSweep = r.Float(-10000, 10000)
	}

	repeat := r.Int(0, 2)
	if repeat >= 1 {
		lo := 0.0
		if l := amp.Len(); l > 0 {
			lo = math.Min(1/l, 100)
		}
		pitch.RepeatFrequency = r.Float(lo, 100)
	}

	if repeat >= 2 {
		pitch.Jump1 = params.Jump{Onset: r.Float01(), Amount: r.Float(-100, 100)}
		if r.Bool(0.5) {
			pitch.Jump2 = params.Jump{Onset: r.Float01(), Amount: r.Float(-100, 100)}
			if pitch.Jump1.Onset < pitch.Jump2.Onset {
				pitch.Jump1.Onset, pitch.Jump2.Onset = pitch.Jump2.Onset, pitch.Jump1.Onset
			}
		}
	}

	if r.Bool(0.5) {
		pitch.VibratoDepth = r.Float(0, 1000)
		pitch.VibratoFrequency = r.Float(0, 1000)
	}

	tone := pickTone(params.AllWaveforms, r)
	if tone.Waveform.IsNoise() {
		tone.InterpolateNoise = r.Bool(0.5)
	}

	if r.Bool(0.5) {
		tone.Harmonics = r.Int(0, 5)
		tone.HarmonicsFalloff = r.Float01()
	}

	return params.SoundSpec{
		Seed:      r.Stream(),
		Pitch:     pitch,
		Tone:      tone,
		Amplitude: amp,
		Filters:   &f,
	}
}
