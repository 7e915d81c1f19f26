package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/sfx/envelope"
	"github.com/cwbudde/algo-sfx/sfx/filter"
	"github.com/cwbudde/algo-sfx/sfx/osc"
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
)

// Pipeline is the composed per-sample signal path of one sound.
type Pipeline struct {
	cfg      core.ProcessorConfig
	duration float64
	seed     uint64

	pitch   envelope.PitchCurve
	duty    envelope.DutyCurve
	amp     envelope.AmplitudeCurve
	voice   osc.Voice
	stages  []stage
	filters []*stage

	pos int
	env []float64
}

// Build composes spec into a pipeline running at cfg.SampleRate.
func Build(spec params.SoundSpec, cfg core.ProcessorConfig) (*Pipeline, error) {
	sr := cfg.SampleRate
	if sr <= 0 || math.IsNaN(sr) || math.IsInf(sr, 0) {
		return nil, fmt.Errorf("synth: sample rate must be > 0 and finite: %f", sr)
	}

	if !spec.Tone.Waveform.Valid() {
		return nil, fmt.Errorf("synth: invalid waveform %d", int(spec.Tone.Waveform))
	}

	d := spec.Duration()
	p := &Pipeline{
		cfg:      cfg,
		duration: d,
		seed:     spec.Seed,
		pitch:    envelope.NewPitchCurve(spec.Pitch, d),
		amp:      envelope.NewAmplitudeCurve(spec.Amplitude),
	}

	if spec.Tone.Waveform == params.Square {
		p.duty = envelope.DutyCurve{Duty: spec.Tone.SquareDuty, Sweep: spec.Tone.SquareDutySweep}
	}

	voice, err := newVoice(spec.Tone, sr)
	if err != nil {
		return nil, err
	}

	p.voice = voice
	p.stages = append(p.stages,
		stage{kind: StagePitch, enabled: true},
		stage{kind: StageVoice, enabled: true},
		stage{kind: StageAmplitude, enabled: true},
	)

	if err := p.appendFilters(spec.EffectiveFilters(), d); err != nil {
		return nil, err
	}

	for i := range p.stages {
		if p.stages[i].enabled && p.stages[i].kind >= StageFlanger {
			p.filters = append(p.filters, &p.stages[i])
		}
	}

	p.Reset()

	return p, nil
}

func (p *Pipeline) appendFilters(f params.Filters, d float64) error {
	flanger := stage{kind: StageFlanger, enabled: f.FlangerEngaged()}
	if flanger.enabled {
		fl, err := filter.NewFlanger(p.cfg.SampleRate, envelope.Sweep{
			Start: f.FlangerOffset, Rate: f.FlangerOffsetSweep, Duration: d,
		})
		if err != nil {
			return err
		}

		flanger.flanger = fl
	}

	crush := stage{kind: StageBitCrush, enabled: f.BitCrushEngaged()}
	if crush.enabled {
		crush.crush = filter.NewBitCrush(envelope.Sweep{
			Start: f.BitCrush, Rate: f.BitCrushSweep, Duration: d,
		})
	}

	lowPass := stage{kind: StageLowPass, enabled: f.LowPassEngaged()}
	if lowPass.enabled {
		lp, err := filter.NewLowPass(p.cfg.SampleRate, envelope.Sweep{
			Start: f.LowPassCutoff, Rate: f.LowPassSweep, Duration: d,
		})
		if err != nil {
			return err
		}

		lowPass.lowPass = lp
	}

	highPass := stage{kind: StageHighPass, enabled: f.HighPassEngaged()}
	if highPass.enabled {
		hp, err := filter.NewHighPass(p.cfg.SampleRate, envelope.Sweep{
			Start: f.HighPassCutoff, Rate: f.HighPassSweep, Duration: d,
		})
		if err != nil {
			return err
		}

		highPass.highPass = hp
	}

	compression := stage{kind: StageCompression, enabled: f.CompressionEngaged(), power: f.Compression}

	p.stages = append(p.stages, flanger, crush, lowPass, highPass, compression)

	return nil
}

// Reset rewinds the pipeline to time zero and reseeds every stateful stage
// from the spec seed and the stage index.
func (p *Pipeline) Reset() {
	p.pos = 0
	for i := range p.stages {
		s := &p.stages[i]
		if !s.enabled {
			continue
		}

		if s.kind == StageVoice {
			p.voice.Reseed(rng.Hash(p.seed, uint64(i)))
			continue
		}

		s.reset()
	}
}

// Process renders the next len(dst) samples into dst.
func (p *Pipeline) Process(dst []float64) {
	if len(dst) == 0 {
		return
	}

	p.env = core.EnsureLen(p.env, len(dst))
	env := p.env[:len(dst)]
	dt := p.cfg.SampleDuration()

	for i := range dst {
		t := float64(p.pos+i) * dt
		hz, cycle := p.pitch.Evaluate(t)
		dst[i] = p.voice.Next(hz, p.duty.Evaluate(cycle))
		env[i] = p.amp.Evaluate(t)
	}

	vecmath.MulBlockInPlace(dst, env)

	for _, s := range p.filters {
		for i := range dst {
			dst[i] = s.process(dst[i], float64(p.pos+i)*dt)
		}
	}

	p.pos += len(dst)
}

// Tick renders a single sample.
func (p *Pipeline) Tick() float64 {
	var buf [1]float64
	p.Process(buf[:])

	return buf[0]
}

// Stages lists every stage in evaluation order.
func (p *Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	for i, s := range p.stages {
		out[i] = Stage{Kind: s.kind, Enabled: s.enabled}
	}

	return out
}

// Enabled reports whether the stage of the given kind is active.
func (p *Pipeline) Enabled(kind StageKind) bool {
	for _, s := range p.stages {
		if s.kind == kind {
			return s.enabled
		}
	}

	return false
}

// Len returns the number of samples in the full sound.
func (p *Pipeline) Len() int {
	return SampleCount(p.duration, p.cfg.SampleRate)
}

// Position returns the index of the next sample.
func (p *Pipeline) Position() int { return p.pos }

// SampleRate returns the pipeline sample rate in Hz.
func (p *Pipeline) SampleRate() float64 { return p.cfg.SampleRate }

// Duration returns the sound duration in seconds.
func (p *Pipeline) Duration() float64 { return p.duration }
