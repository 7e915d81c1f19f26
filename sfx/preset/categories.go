package preset

import (
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
)

const nyquist = params.DefaultLowPassCutoff

// JumpSpec samples a rising jump sound.
func JumpSpec(r *rng.Rand) params.SoundSpec {
	f := params.DefaultFilters()
	if r.Bool(0.3) {
		flanger(&f, r, 10)
	}

	if r.Bool(0.5) {
		f.LowPassCutoff = r.Float(0, nyquist)
		f.LowPassSweep = r.Float(-nyquist, nyquist)
	}

	if r.Bool(0.5) {
		f.HighPassCutoff = r.Float(0, nyquist)
		f.HighPassSweep = r.Float(-nyquist, nyquist)
	}

	s := params.New(r.Stream())
	s.Amplitude = params.Amplitude{
		Sustain: r.Float(0.02, 0.1),
		Decay:   r.Float(0.05, 0.4),
		Punch:   punch(r),
	}
	s.Pitch = params.Pitch{
		Frequency:      r.Float(100, 2000),
		FrequencySweep: r.Float(200, 2000),
	}
	s.Tone = pickTone(params.SetOf(params.Sine, params.Square, params.Whistle, params.Breaker), r)
	s.Filters = &f

	return s
}

// ExplosionSpec samples a falling noise burst.
func ExplosionSpec(r *rng.Rand) params.SoundSpec {
	s := params.New(0)
	s.Tone = params.ToneFrom(params.PickWaveform(params.NoiseWaveforms, r))
	s.Tone.InterpolateNoise = r.Bool(0.5)

	s.Amplitude = params.Amplitude{
		Sustain: r.Float(0.05, 0.1),
		Punch:   punch(r),
		Decay:   r.Float(0.3, 0.5),
	}
	if r.Bool(0.5) {
		s.Amplitude.TremoloDepth = r.Float01()
		s.Amplitude.TremoloFrequency = r.Float(0, 100)
	}

	if s.Tone.Waveform == params.Brown {
		s.Pitch.Frequency = r.Float(10000, 20000)
	} else {
		s.Pitch.Frequency = r.Float(1000, 10000)
	}
	s.Pitch.FrequencySweep = between(r, -1000, -5000)
	s.Pitch.FrequencyDeltaSweep = between(r, -1000, -5000)

	f := params.DefaultFilters()
	if r.Bool(0.5) {
		flanger(&f, r, 10)
	}

	if r.Bool(0.5) {
		f.Compression = r.Float(0.5, 2)
	}

	s.Filters = &f
	s.Seed = r.Stream()

	return s
}

// PowerupSpec samples a rising, optionally repeating power-up sound.
func PowerupSpec(r *rng.Rand) params.SoundSpec {
	s := params.New(r.Stream())
	s.Tone = pickTone(params.TonalWaveforms, r)
	s.Amplitude = params.Amplitude{
		Sustain: r.Float(0.05, 0.2),
		Punch:   punch(r),
		Decay:   r.Float(0.1, 0.4),
	}
	s.Pitch = params.Pitch{
		Frequency:           r.Float(500, 2000),
		FrequencySweep:      r.Float(0, 2000),
		FrequencyDeltaSweep: r.Float(0, 2000),
	}
	if r.Bool(0.5) {
		s.Pitch.RepeatFrequency = r.Float(0, 20)
	}

	if r.Bool(0.5) {
		s.Pitch.VibratoDepth = r.Float(0, 1000)
		s.Pitch.VibratoFrequency = r.Float(0, 1000)
	}

	return s
}

// LaserSpec samples a short falling zap.
func LaserSpec(r *rng.Rand) params.SoundSpec {
	s := params.New(r.Stream())
	s.Tone = pickTone(params.TonalWaveforms, r)
	s.Amplitude = params.Amplitude{
		Sustain: r.Float(0.02, 0.1),
		Punch:   punch(r),
		Decay:   r.Float(0.02, 0.1),
	}
	s.Pitch = params.Pitch{
		Frequency:           r.Float(500, 2000),
		FrequencySweep:      between(r, -200, -2000),
		FrequencyDeltaSweep: between(r, -200, -2000),
	}
	if r.Bool(0.5) {
		s.Pitch.VibratoDepth = r.Float(0, 0.5*s.Pitch.Frequency)
		s.Pitch.VibratoFrequency = r.Float(0, 100)
	}

	if r.Bool(0.5) {
		f := params.DefaultFilters()
		flanger(&f, r, 10)
		s.Filters = &f
	}

	return s
}

// PickupSpec samples a coin or item pickup with upward pitch jumps.
func PickupSpec(r *rng.Rand) params.SoundSpec {
	s := params.New(r.Stream())
	s.Tone = pickTone(params.SetOf(params.Sine, params.Square, params.Whistle, params.Breaker), r)
	s.Amplitude = params.Amplitude{
		Sustain: r.Float(0.02, 0.1),
		Punch:   punch(r),
		Decay:   r.Float(0.05, 0.4),
	}
	s.Pitch.Frequency = r.Float(100, 2000)
	if r.Bool(0.7) {
		s.Pitch.Jump1 = params.Jump{Onset: r.Float(0.1, 0.3), Amount: r.Float(0.1, 1)}
	}

	if r.Bool(0.3) {
		s.Pitch.Jump2 = params.Jump{Onset: r.Float(0.2, 0.4), Amount: r.Float(0.1, 1)}
	}

	if r.Bool(0.5) {
		f := params.DefaultFilters()
		flanger(&f, r, 10)
		s.Filters = &f
	}

	return s
}

// HitSpec samples a short falling impact.
func HitSpec(r *rng.Rand) params.SoundSpec {
	f := params.DefaultFilters()
	f.LowPassSweep = r.Float(-nyquist, nyquist)
	if r.Bool(0.5) {
		flanger(&f, r, 10)
	}

	s := params.New(r.Stream())
	s.Pitch = params.Pitch{
		Frequency:           r.Float(500, 1000),
		FrequencySweep:      between(r, -200, -1000),
		FrequencyDeltaSweep: between(r, -200, -1000),
	}
	s.Tone = params.ToneFrom(params.PickWaveform(params.SetOf(
		params.Saw, params.Square, params.Tangent, params.White, params.Pink, params.Brown,
	), r))
	s.Amplitude = params.Amplitude{
		Sustain: r.Float(0.02, 0.1),
		Punch:   punch(r),
		Decay:   r.Float(0.02, 0.1),
	}
	s.Filters = &f

	return s
}

// BlipSpec samples a very short menu blip.
func BlipSpec(r *rng.Rand) params.SoundSpec {
	s := params.New(r.Stream())
	s.Tone = params.ToneFrom(params.PickWaveform(params.TonalWaveforms, r))
	s.Tone.SquareDuty = r.Float(0.1, 0.9)
	if r.Bool(0.5) {
		s.Tone.Harmonics = r.Int(1, 5)
		s.Tone.HarmonicsFalloff = r.Float01()
	}

	s.Amplitude = params.Amplitude{
		Sustain: r.Float(0.01, 0.07),
		Decay:   r.Float(0, 0.03),
	}
	s.Pitch.Frequency = r.Float(100, 3000)

	return s
}
