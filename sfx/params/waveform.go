package params

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/cwbudde/algo-sfx/sfx/rng"
)

// Waveform selects the oscillator used by a Tone.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Saw
	Square
	Tangent
	Whistle
	Breaker
	White
	Pink
	Brown

	waveformCount
)

var waveformNames = [waveformCount]string{
	"sine", "triangle", "saw", "square", "tangent",
	"whistle", "breaker", "white", "pink", "brown",
}

func (w Waveform) String() string {
	if !w.Valid() {
		return fmt.Sprintf("waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// Valid reports whether w is one of the ten defined waveforms.
func (w Waveform) Valid() bool {
	return w >= 0 && w < waveformCount
}

// IsNoise reports whether w is driven by the noise generator.
func (w Waveform) IsNoise() bool {
	return w == White || w == Pink || w == Brown
}

// ParseWaveform resolves a case-insensitive waveform name.
func ParseWaveform(name string) (Waveform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range waveformNames {
		if n == name {
			return Waveform(i), nil
		}
	}
	return Sine, fmt.Errorf("params: unknown waveform %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (w Waveform) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("params: invalid waveform %d", int(w))
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Waveform) UnmarshalText(text []byte) error {
	parsed, err := ParseWaveform(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (w Waveform) MarshalYAML() (interface{}, error) {
	text, err := w.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Waveform) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	return w.UnmarshalText([]byte(name))
}

// WaveformSet is a bit set of waveforms.
type WaveformSet uint32

// Common waveform sets used by presets.
const (
	AllWaveforms   WaveformSet = 1<<waveformCount - 1
	NoiseWaveforms WaveformSet = 1<<White | 1<<Pink | 1<<Brown
	TonalWaveforms             = AllWaveforms &^ NoiseWaveforms
)

// SetOf builds a set from the given waveforms.
func SetOf(waveforms ...Waveform) WaveformSet {
	var s WaveformSet
	for _, w := range waveforms {
		if w.Valid() {
			s |= 1 << w
		}
	}
	return s
}

// Contains reports whether w is in the set.
func (s WaveformSet) Contains(w Waveform) bool {
	return w.Valid() && s&(1<<w) != 0
}

// Len returns the number of waveforms in the set.
func (s WaveformSet) Len() int {
	return bits.OnesCount32(uint32(s & AllWaveforms))
}

// Waveforms lists the set members in declaration order.
func (s WaveformSet) Waveforms() []Waveform {
	out := make([]Waveform, 0, s.Len())
	for w := Waveform(0); w < waveformCount; w++ {
		if s.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}

// PickWaveform draws a waveform uniformly from set. An empty set yields Sine
// without consuming randomness.
func PickWaveform(set WaveformSet, r *rng.Rand) Waveform {
	members := set.Waveforms()
	if len(members) == 0 {
		return Sine
	}
	return members[r.Index(len(members))]
}
