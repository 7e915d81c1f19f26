package mutate

import "github.com/cwbudde/algo-sfx/sfx/params"

// target is the mutable view of a spec while it is being mutated. Filters is
// always non-nil here.
type target struct {
	spec    *params.SoundSpec
	filters *params.Filters
}

// Field describes one mutable scalar parameter.
type Field struct {
	Name    string
	Default float64
	Min     float64
	Max     float64
	// Step is the quantization granularity of float fields.
	Step float64
	// Integer fields move by -1, 0 or +1 instead of a scaled uniform step.
	Integer bool

	get func(*target) float64
	set func(*target, float64)
}

// Value reads the field from s. Specs without filters report the filter
// defaults.
func (f Field) Value(s params.SoundSpec) float64 {
	filters := s.EffectiveFilters()
	return f.get(&target{spec: &s, filters: &filters})
}

// Range returns the mutation half-width: 5% of the field span.
func (f Field) Range() float64 {
	return 0.05 * (f.Max - f.Min)
}

func floatField(name string, def, min, max, step float64, ptr func(*target) *float64) Field {
	return Field{
		Name: name, Default: def, Min: min, Max: max, Step: step,
		get: func(t *target) float64 { return *ptr(t) },
		set: func(t *target, v float64) { *ptr(t) = v },
	}
}

func intField(name string, def, min, max float64, ptr func(*target) *float64) Field {
	f := floatField(name, def, min, max, 1, ptr)
	f.Integer = true
	return f
}

const nyquist = params.DefaultLowPassCutoff

var fields = []Field{
	floatField("pitch.frequency", 0, 0, nyquist, 100,
		func(t *target) *float64 { return &t.spec.Pitch.Frequency }),
	floatField("pitch.frequency_sweep", 0, -nyquist, nyquist, 100,
		func(t *target) *float64 { return &t.spec.Pitch.FrequencySweep }),
	floatField("pitch.frequency_delta_sweep", 0, -nyquist, nyquist, 100,
		func(t *target) *float64 { return &t.spec.Pitch.FrequencyDeltaSweep }),
	floatField("pitch.vibrato_depth", 0, 0, 1000, 10,
		func(t *target) *float64 { return &t.spec.Pitch.VibratoDepth }),
	floatField("pitch.vibrato_frequency", 0, 0, 1000, 10,
		func(t *target) *float64 { return &t.spec.Pitch.VibratoFrequency }),
	floatField("pitch.repeat_frequency", 0, 0, 100, 1,
		func(t *target) *float64 { return &t.spec.Pitch.RepeatFrequency }),
	floatField("pitch.frequency_jump1.onset", 0, 0, 1, 0.05,
		func(t *target) *float64 { return &t.spec.Pitch.Jump1.Onset }),
	floatField("pitch.frequency_jump1.amount", 0, -100, 100, 0.1,
		func(t *target) *float64 { return &t.spec.Pitch.Jump1.Amount }),
	floatField("pitch.frequency_jump2.onset", 0, 0, 1, 0.05,
		func(t *target) *float64 { return &t.spec.Pitch.Jump2.Onset }),
	floatField("pitch.frequency_jump2.amount", 0, -100, 100, 0.1,
		func(t *target) *float64 { return &t.spec.Pitch.Jump2.Amount }),

	floatField("tone.square_duty", 0.5, 0, 1, 0.05,
		func(t *target) *float64 { return &t.spec.Tone.SquareDuty }),
	floatField("tone.square_duty_sweep", 0, -1, 1, 0.05,
		func(t *target) *float64 { return &t.spec.Tone.SquareDutySweep }),
	{
		Name: "tone.harmonics", Default: 0, Min: 0, Max: 8, Step: 1, Integer: true,
		get: func(t *target) float64 { return float64(t.spec.Tone.Harmonics) },
		set: func(t *target, v float64) { t.spec.Tone.Harmonics = int(v) },
	},
	floatField("tone.harmonics_falloff", 0, 0, 1, 0.05,
		func(t *target) *float64 { return &t.spec.Tone.HarmonicsFalloff }),

	floatField("amplitude.attack", 0, 0, 5, 0.01,
		func(t *target) *float64 { return &t.spec.Amplitude.Attack }),
	floatField("amplitude.sustain", 0, 0, 5, 0.01,
		func(t *target) *float64 { return &t.spec.Amplitude.Sustain }),
	floatField("amplitude.punch", 0, 0, 1, 0.1,
		func(t *target) *float64 { return &t.spec.Amplitude.Punch }),
	floatField("amplitude.decay", 0, 0, 5, 0.01,
		func(t *target) *float64 { return &t.spec.Amplitude.Decay }),
	floatField("amplitude.tremolo_depth", 0, 0, 1, 0.05,
		func(t *target) *float64 { return &t.spec.Amplitude.TremoloDepth }),
	floatField("amplitude.tremolo_frequency", 0, 0, 1000, 1,
		func(t *target) *float64 { return &t.spec.Amplitude.TremoloFrequency }),

	floatField("filters.flanger_offset", 0, 0, 50, 0.5,
		func(t *target) *float64 { return &t.filters.FlangerOffset }),
	floatField("filters.flanger_offset_sweep", 0, -50, 50, 0.5,
		func(t *target) *float64 { return &t.filters.FlangerOffsetSweep }),
	intField("filters.bit_crush", 0, 0, 16,
		func(t *target) *float64 { return &t.filters.BitCrush }),
	intField("filters.bit_crush_sweep", 0, -16, 16,
		func(t *target) *float64 { return &t.filters.BitCrushSweep }),
	floatField("filters.low_pass_cutoff", nyquist, 0, nyquist, 100,
		func(t *target) *float64 { return &t.filters.LowPassCutoff }),
	floatField("filters.low_pass_sweep", 0, -nyquist, nyquist, 100,
		func(t *target) *float64 { return &t.filters.LowPassSweep }),
	floatField("filters.high_pass_cutoff", 0, 0, nyquist, 100,
		func(t *target) *float64 { return &t.filters.HighPassCutoff }),
	floatField("filters.high_pass_sweep", 0, -nyquist, nyquist, 100,
		func(t *target) *float64 { return &t.filters.HighPassSweep }),
	floatField("filters.compression", 1, 0.1, 4, 0.1,
		func(t *target) *float64 { return &t.filters.Compression }),
}

// Fields returns the mutation table in evaluation order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// Lookup returns the field with the given dotted name.
func Lookup(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}
