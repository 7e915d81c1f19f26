package testutil

import (
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
)

// RandomSpec draws a short sound spec with every parameter group exercised
// at random, including out-of-range filter values the renderer must clamp.
func RandomSpec(r *rng.Rand) params.SoundSpec {
	s := params.New(r.Stream())
	s.Pitch = params.Pitch{
		Frequency:           r.Float(0, 4000),
		FrequencySweep:      r.Float(-4000, 4000),
		FrequencyDeltaSweep: r.Float(-2000, 2000),
		Jump1:               params.Jump{Onset: r.Float01(), Amount: r.Float(-0.5, 1)},
		Jump2:               params.Jump{Onset: r.Float01(), Amount: r.Float(-0.5, 1)},
	}
	if r.Bool(0.5) {
		s.Pitch.VibratoDepth = r.Float(0, 200)
		s.Pitch.VibratoFrequency = r.Float(0, 30)
	}
	if r.Bool(0.5) {
		s.Pitch.RepeatFrequency = r.Float(0, 20)
	}

	s.Tone = params.Tone{
		Waveform:         params.PickWaveform(params.AllWaveforms, r),
		InterpolateNoise: r.Bool(0.5),
		SquareDuty:       r.Float01(),
		SquareDutySweep:  r.Float(-1, 1),
		Harmonics:        r.Int(0, 3),
		HarmonicsFalloff: r.Float01(),
	}

	s.Amplitude = params.Amplitude{
		Attack:  r.Float(0, 0.05),
		Sustain: r.Float(0, 0.1),
		Punch:   r.Float01(),
		Decay:   r.Float(0, 0.1),
	}
	if r.Bool(0.3) {
		s.Amplitude.TremoloDepth = r.Float01()
		s.Amplitude.TremoloFrequency = r.Float(0, 50)
	}

	if r.Bool(0.7) {
		f := params.DefaultFilters()
		if r.Bool(0.3) {
			f.FlangerOffset = r.Float(0, 20)
			f.FlangerOffsetSweep = r.Float(-20, 20)
		}
		if r.Bool(0.3) {
			f.BitCrush = float64(r.Int(1, 16))
			f.BitCrushSweep = float64(r.Int(-16, 16))
		}
		if r.Bool(0.4) {
			f.LowPassCutoff = r.Float(-1000, 30000)
			f.LowPassSweep = r.Float(-30000, 30000)
		}
		if r.Bool(0.3) {
			f.HighPassCutoff = r.Float(0, 30000)
			f.HighPassSweep = r.Float(-30000, 30000)
		}
		if r.Bool(0.3) {
			f.Compression = r.Float(0.1, 4)
		}
		s.Filters = &f
	}

	return s
}
