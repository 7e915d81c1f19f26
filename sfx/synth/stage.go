package synth

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/sfx/filter"
	"github.com/cwbudde/algo-sfx/sfx/osc"
	"github.com/cwbudde/algo-sfx/sfx/params"
)

// StageKind identifies a pipeline stage.
type StageKind int

const (
	StagePitch StageKind = iota
	StageVoice
	StageAmplitude
	StageFlanger
	StageBitCrush
	StageLowPass
	StageHighPass
	StageCompression
)

func (k StageKind) String() string {
	switch k {
	case StagePitch:
		return "pitch"
	case StageVoice:
		return "voice"
	case StageAmplitude:
		return "amplitude"
	case StageFlanger:
		return "flanger"
	case StageBitCrush:
		return "bit_crush"
	case StageLowPass:
		return "low_pass"
	case StageHighPass:
		return "high_pass"
	case StageCompression:
		return "compression"
	default:
		return fmt.Sprintf("stage(%d)", int(k))
	}
}

// Stage describes one pipeline stage for inspection.
type Stage struct {
	Kind    StageKind
	Enabled bool
}

func (s Stage) String() string {
	if s.Enabled {
		return s.Kind.String()
	}

	return s.Kind.String() + " (off)"
}

// stage is the evaluated form. Only the field matching kind is set, and only
// when the stage is enabled.
type stage struct {
	kind    StageKind
	enabled bool

	flanger  *filter.Flanger
	crush    *filter.BitCrush
	lowPass  *filter.LowPass
	highPass *filter.HighPass
	power    float64
}

func (s *stage) process(x, t float64) float64 {
	switch s.kind {
	case StageFlanger:
		return s.flanger.Process(x, t)
	case StageBitCrush:
		return s.crush.Process(x, t)
	case StageLowPass:
		return s.lowPass.Process(x, t)
	case StageHighPass:
		return s.highPass.Process(x, t)
	case StageCompression:
		return filter.Compress(x, s.power)
	default:
		return x
	}
}

func (s *stage) reset() {
	switch s.kind {
	case StageFlanger:
		s.flanger.Reset()
	case StageLowPass:
		s.lowPass.Reset()
	case StageHighPass:
		s.highPass.Reset()
	}
}

// coloredNoise is a noise source followed by a pink or brown filter.
type coloredNoise struct {
	noise *osc.Noise
	color interface {
		Process(white float64) float64
		Reset()
	}
}

func (c *coloredNoise) Next(freqHz, duty float64) float64 {
	return c.color.Process(c.noise.Next(freqHz, duty))
}

func (c *coloredNoise) Reset() {
	c.noise.Reset()
	c.color.Reset()
}

func (c *coloredNoise) Reseed(hash uint64) {
	c.noise.Reseed(hash)
	c.color.Reset()
}

var phaseShapes = map[params.Waveform]osc.Shape{
	params.Sine:     osc.ShapeSine,
	params.Triangle: osc.ShapeTriangle,
	params.Saw:      osc.ShapeSaw,
	params.Tangent:  osc.ShapeTangent,
	params.Whistle:  osc.ShapeWhistle,
	params.Breaker:  osc.ShapeBreaker,
}

// voiceFactory returns a constructor for the single-oscillator voice of tone.
func voiceFactory(tone params.Tone, sampleRate float64) (func() (osc.Voice, error), error) {
	switch w := tone.Waveform; w {
	case params.Square:
		return func() (osc.Voice, error) { return osc.NewSquare(sampleRate) }, nil
	case params.White:
		return func() (osc.Voice, error) { return osc.NewNoise(sampleRate, tone.InterpolateNoise) }, nil
	case params.Pink:
		return func() (osc.Voice, error) {
			n, err := osc.NewNoise(sampleRate, tone.InterpolateNoise)
			if err != nil {
				return nil, err
			}

			return &coloredNoise{noise: n, color: &filter.Pink{}}, nil
		}, nil
	case params.Brown:
		return func() (osc.Voice, error) {
			n, err := osc.NewNoise(sampleRate, tone.InterpolateNoise)
			if err != nil {
				return nil, err
			}

			b, err := filter.NewBrown(sampleRate)
			if err != nil {
				return nil, err
			}

			return &coloredNoise{noise: n, color: b}, nil
		}, nil
	default:
		shape, ok := phaseShapes[w]
		if !ok {
			return nil, fmt.Errorf("synth: unsupported waveform %v", w)
		}

		return func() (osc.Voice, error) { return osc.NewPhase(shape, sampleRate) }, nil
	}
}

// newVoice builds the voice of tone, wrapped in a harmonic stack when
// harmonics are requested.
func newVoice(tone params.Tone, sampleRate float64) (osc.Voice, error) {
	factory, err := voiceFactory(tone, sampleRate)
	if err != nil {
		return nil, err
	}

	if tone.Harmonics > 0 {
		return osc.NewStack(factory, tone.Harmonics, tone.HarmonicsFalloff)
	}

	return factory()
}
