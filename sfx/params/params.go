// Package params defines the parameter model of a synthesized sound effect.
//
// A [SoundSpec] bundles a render seed with pitch, tone, amplitude and optional
// filter settings. Specs are plain values: presets and the mutator build new
// ones, the renderer only reads them.
package params

import (
	"fmt"
	"strings"
)

// Nyquist of the 44.1 kHz authoring rate. A low-pass cutoff at or above it
// disables the low-pass stage.
const DefaultLowPassCutoff = 22050.0

// Jump is a one-off relative frequency change inside a repeat cycle.
type Jump struct {
	// Onset is the normalized position in [0, 1] after which the jump applies.
	Onset float64 `json:"onset" yaml:"onset"`
	// Amount scales the frequency by 1+Amount.
	Amount float64 `json:"amount" yaml:"amount"`
}

// Pitch describes the frequency curve of a sound.
type Pitch struct {
	Frequency           float64 `json:"frequency" yaml:"frequency"`
	FrequencySweep      float64 `json:"frequency_sweep,omitempty" yaml:"frequency_sweep,omitempty"`
	FrequencyDeltaSweep float64 `json:"frequency_delta_sweep,omitempty" yaml:"frequency_delta_sweep,omitempty"`
	VibratoDepth        float64 `json:"vibrato_depth,omitempty" yaml:"vibrato_depth,omitempty"`
	VibratoFrequency    float64 `json:"vibrato_frequency,omitempty" yaml:"vibrato_frequency,omitempty"`
	// RepeatFrequency restarts the sweep and jump clock. Zero disables it.
	RepeatFrequency float64 `json:"repeat_frequency,omitempty" yaml:"repeat_frequency,omitempty"`
	Jump1           Jump    `json:"frequency_jump1" yaml:"frequency_jump1"`
	Jump2           Jump    `json:"frequency_jump2" yaml:"frequency_jump2"`
}

// HasVibrato reports whether both vibrato depth and rate are positive.
func (p Pitch) HasVibrato() bool {
	return p.VibratoDepth > 0 && p.VibratoFrequency > 0
}

func (p Pitch) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.0f hz", p.Frequency)
	if p.FrequencySweep != 0 {
		fmt.Fprintf(&b, " sweep: %.0f", p.FrequencySweep)
	}
	if p.FrequencyDeltaSweep != 0 {
		fmt.Fprintf(&b, " delta sweep: %.0f", p.FrequencyDeltaSweep)
	}
	if p.HasVibrato() {
		fmt.Fprintf(&b, " vibrato: (%.0f, %.0f)", p.VibratoDepth, p.VibratoFrequency)
	}
	if p.RepeatFrequency > 0 {
		fmt.Fprintf(&b, " repeat: %.1f", p.RepeatFrequency)
	}
	if p.Jump1.Onset > 0 {
		fmt.Fprintf(&b, " jump1: (%.2f, %.2f)", p.Jump1.Onset, p.Jump1.Amount)
	}
	if p.Jump2.Onset > 0 {
		fmt.Fprintf(&b, " jump2: (%.2f, %.2f)", p.Jump2.Onset, p.Jump2.Amount)
	}
	return b.String()
}

// Tone selects the oscillator and its timbre controls.
type Tone struct {
	Waveform Waveform `json:"waveform" yaml:"waveform"`
	// InterpolateNoise smooths noise waveforms between random values.
	InterpolateNoise bool    `json:"interpolate_noise,omitempty" yaml:"interpolate_noise,omitempty"`
	SquareDuty       float64 `json:"square_duty" yaml:"square_duty"`
	SquareDutySweep  float64 `json:"square_duty_sweep,omitempty" yaml:"square_duty_sweep,omitempty"`
	Harmonics        int     `json:"harmonics,omitempty" yaml:"harmonics,omitempty"`
	HarmonicsFalloff float64 `json:"harmonics_falloff,omitempty" yaml:"harmonics_falloff,omitempty"`
}

// DefaultTone returns a plain sine tone with a symmetric duty cycle.
func DefaultTone() Tone {
	return Tone{Waveform: Sine, SquareDuty: 0.5}
}

// ToneFrom returns the default tone using waveform w.
func ToneFrom(w Waveform) Tone {
	t := DefaultTone()
	t.Waveform = w
	return t
}

func (t Tone) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tone: %s", t.Waveform)
	if t.InterpolateNoise && t.Waveform.IsNoise() {
		b.WriteString(" interp")
	}
	if t.Waveform == Square {
		fmt.Fprintf(&b, " duty: %.2f sweep: %.2f", t.SquareDuty, t.SquareDutySweep)
	}
	if t.Harmonics > 0 {
		fmt.Fprintf(&b, " harmonics: %d falloff: %.1f", t.Harmonics, t.HarmonicsFalloff)
	}
	return b.String()
}

// Amplitude is the attack/sustain/punch/decay envelope with optional tremolo.
// Times are in seconds.
type Amplitude struct {
	Attack           float64 `json:"attack,omitempty" yaml:"attack,omitempty"`
	Sustain          float64 `json:"sustain,omitempty" yaml:"sustain,omitempty"`
	Punch            float64 `json:"punch,omitempty" yaml:"punch,omitempty"`
	Decay            float64 `json:"decay,omitempty" yaml:"decay,omitempty"`
	TremoloDepth     float64 `json:"tremolo_depth,omitempty" yaml:"tremolo_depth,omitempty"`
	TremoloFrequency float64 `json:"tremolo_frequency,omitempty" yaml:"tremolo_frequency,omitempty"`
}

// Len returns the total sound duration in seconds.
func (a Amplitude) Len() float64 {
	return a.Attack + a.Sustain + a.Decay
}

func (a Amplitude) String() string {
	var b strings.Builder
	b.WriteString("amplitude:")
	if a.Attack > 0 {
		fmt.Fprintf(&b, " %.2f attack", a.Attack)
	}
	if a.Sustain > 0 {
		fmt.Fprintf(&b, " %.2f sustain", a.Sustain)
	}
	if a.Punch > 0 {
		fmt.Fprintf(&b, " %.1f punch", a.Punch)
	}
	if a.Decay > 0 {
		fmt.Fprintf(&b, " %.2f decay", a.Decay)
	}
	if a.TremoloDepth > 0 {
		fmt.Fprintf(&b, " tremolo: %.2f/%.0f", a.TremoloDepth, a.TremoloFrequency)
	}
	return b.String()
}

// Filters configures the post-envelope stages. Every stage is inert at its
// default value and is then left out of the signal path entirely.
type Filters struct {
	// FlangerOffset is the flanger delay in milliseconds.
	FlangerOffset      float64 `json:"flanger_offset,omitempty" yaml:"flanger_offset,omitempty"`
	FlangerOffsetSweep float64 `json:"flanger_offset_sweep,omitempty" yaml:"flanger_offset_sweep,omitempty"`
	// BitCrush is the quantizer depth in bits. Zero disables the stage.
	BitCrush       float64 `json:"bit_crush,omitempty" yaml:"bit_crush,omitempty"`
	BitCrushSweep  float64 `json:"bit_crush_sweep,omitempty" yaml:"bit_crush_sweep,omitempty"`
	LowPassCutoff  float64 `json:"low_pass_cutoff" yaml:"low_pass_cutoff"`
	LowPassSweep   float64 `json:"low_pass_sweep,omitempty" yaml:"low_pass_sweep,omitempty"`
	HighPassCutoff float64 `json:"high_pass_cutoff,omitempty" yaml:"high_pass_cutoff,omitempty"`
	HighPassSweep  float64 `json:"high_pass_sweep,omitempty" yaml:"high_pass_sweep,omitempty"`
	Compression    float64 `json:"compression" yaml:"compression"`
}

// DefaultFilters returns filters with every stage disengaged.
func DefaultFilters() Filters {
	return Filters{
		LowPassCutoff: DefaultLowPassCutoff,
		Compression:   1,
	}
}

// FlangerEngaged reports whether the flanger stage is active.
func (f Filters) FlangerEngaged() bool { return f.FlangerOffset > 0 }

// BitCrushEngaged reports whether the bit-crush stage is active.
func (f Filters) BitCrushEngaged() bool { return f.BitCrush > 0 }

// LowPassEngaged reports whether the low-pass stage is active.
func (f Filters) LowPassEngaged() bool { return f.LowPassCutoff < DefaultLowPassCutoff }

// HighPassEngaged reports whether the high-pass stage is active.
func (f Filters) HighPassEngaged() bool { return f.HighPassCutoff > 0 }

// CompressionEngaged reports whether the power-law compression stage is active.
func (f Filters) CompressionEngaged() bool { return f.Compression > 0 && f.Compression != 1 }

// IsNeutral reports whether no stage is engaged.
func (f Filters) IsNeutral() bool {
	return !f.FlangerEngaged() && !f.BitCrushEngaged() && !f.LowPassEngaged() &&
		!f.HighPassEngaged() && !f.CompressionEngaged()
}

func (f Filters) String() string {
	var b strings.Builder
	b.WriteString("filters:")
	if f.FlangerEngaged() {
		fmt.Fprintf(&b, " flanger: %.1f/%.1f", f.FlangerOffset, f.FlangerOffsetSweep)
	}
	if f.BitCrushEngaged() {
		fmt.Fprintf(&b, " bit_crush: %.0f/%.0f", f.BitCrush, f.BitCrushSweep)
	}
	if f.LowPassEngaged() {
		fmt.Fprintf(&b, " low_pass: %.0f/%.0f", f.LowPassCutoff, f.LowPassSweep)
	}
	if f.HighPassEngaged() {
		fmt.Fprintf(&b, " high_pass: %.0f/%.0f", f.HighPassCutoff, f.HighPassSweep)
	}
	if f.CompressionEngaged() {
		fmt.Fprintf(&b, " compression: %.1f", f.Compression)
	}
	if f.IsNeutral() {
		b.WriteString(" none")
	}
	return b.String()
}

// SoundSpec is the complete description of one sound effect.
type SoundSpec struct {
	Seed      uint64    `json:"seed" yaml:"seed"`
	Pitch     Pitch     `json:"pitch" yaml:"pitch"`
	Tone      Tone      `json:"tone" yaml:"tone"`
	Amplitude Amplitude `json:"amplitude" yaml:"amplitude"`
	Filters   *Filters  `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// New returns a spec with default tone and no filters.
func New(seed uint64) SoundSpec {
	return SoundSpec{Seed: seed, Tone: DefaultTone()}
}

// Duration returns the render length in seconds.
func (s SoundSpec) Duration() float64 {
	return s.Amplitude.Len()
}

// EffectiveFilters returns the filters, or the neutral defaults when unset.
func (s SoundSpec) EffectiveFilters() Filters {
	if s.Filters == nil {
		return DefaultFilters()
	}
	return *s.Filters
}

// Clone returns a deep copy of s.
func (s SoundSpec) Clone() SoundSpec {
	out := s
	if s.Filters != nil {
		f := *s.Filters
		out.Filters = &f
	}
	return out
}

func (s SoundSpec) String() string {
	parts := []string{
		fmt.Sprintf("seed: %d", s.Seed),
		s.Pitch.String(),
		s.Tone.String(),
		s.Amplitude.String(),
	}
	if s.Filters != nil && !s.Filters.IsNeutral() {
		parts = append(parts, s.Filters.String())
	}
	return strings.Join(parts, " | ")
}
