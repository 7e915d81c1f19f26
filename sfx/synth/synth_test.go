package synth

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/internal/testutil"
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
)

const testSampleRate = 44100.0

func squareScenario() params.SoundSpec {
	s := params.New(1)
	s.Pitch = params.Pitch{Frequency: 220, RepeatFrequency: 2}
	s.Tone = params.Tone{Waveform: params.Square, SquareDuty: 0.1, SquareDutySweep: 0.9}
	s.Amplitude = params.Amplitude{Sustain: 2}
	return s
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		d, sr float64
		want  int
	}{
		{2, 44100, 88200},
		{0.1, 44100, 4410},
		{0.30000000000000004, 44100, 13230},
		{1e-6, 44100, 1},
		{0, 44100, 0},
		{-1, 44100, 0},
		{1, 0, 0},
		{math.NaN(), 44100, 0},
		{1, math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := SampleCount(tt.d, tt.sr); got != tt.want {
			t.Fatalf("SampleCount(%v, %v) = %d, want %d", tt.d, tt.sr, got, tt.want)
		}
	}
}

func TestRenderSquareScenario(t *testing.T) {
	buf := Render(squareScenario(), testSampleRate)
	if buf.Len() != 88200 {
		t.Fatalf("Len() = %d, want 88200", buf.Len())
	}

	// Measure the duty cycle over the first and last pitch period of each
	// repeat cycle: it must start near 0.1 and approach 1 twice.
	sampleRate := testSampleRate
	period := int(sampleRate / 220)
	duty := func(start int) float64 {
		high := 0
		for _, v := range buf.Samples[start : start+period] {
			if v > 0 {
				high++
			}
		}
		return float64(high) / float64(period)
	}

	for _, cycleStart := range []int{0, 44100} {
		early := duty(cycleStart + period)
		late := duty(cycleStart + 44100 - 2*period)
		if early > 0.25 {
			t.Fatalf("cycle at %d: early duty = %v, want near 0.1", cycleStart, early)
		}
		if late < 0.9 {
			t.Fatalf("cycle at %d: late duty = %v, want near 1", cycleStart, late)
		}
	}
}

func TestRenderZeroLength(t *testing.T) {
	s := params.New(3)
	s.Pitch.Frequency = 440
	buf := Render(s, testSampleRate)
	if buf.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", buf.Len())
	}
	if buf.Duration() != 0 {
		t.Fatalf("Duration() = %v, want 0", buf.Duration())
	}
}

func TestRenderInvalidSampleRate(t *testing.T) {
	for _, sr := range []float64{0, -44100, math.NaN()} {
		if got := Render(squareScenario(), sr).Len(); got != 0 {
			t.Fatalf("Render(sr=%v).Len() = %d, want 0", sr, got)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := rng.New(2024)
	for i := 0; i < 60; i++ {
		spec := testutil.RandomSpec(r)
		a := Render(spec, testSampleRate)
		b := Render(spec.Clone(), testSampleRate)
		testutil.RequireBitIdentical(t, a.Samples, b.Samples)
		testutil.RequireFinite(t, a.Samples)
		if want := SampleCount(spec.Duration(), testSampleRate); a.Len() != want {
			t.Fatalf("spec %d: Len() = %d, want %d", i, a.Len(), want)
		}
	}
}

func TestRenderIndependentOfBlockSize(t *testing.T) {
	r := rng.New(77)
	for i := 0; i < 20; i++ {
		spec := testutil.RandomSpec(r)
		want := Render(spec, testSampleRate)
		for _, bs := range []int{1, 7, 4096} {
			rd, err := NewRenderer(testSampleRate, WithBlockSize(bs))
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireBitIdentical(t, rd.Render(spec).Samples, want.Samples)
		}
	}
}

func TestNeutralFiltersIdentity(t *testing.T) {
	r := rng.New(5)
	for i := 0; i < 20; i++ {
		spec := testutil.RandomSpec(r)
		spec.Filters = nil
		bare := Render(spec, testSampleRate)

		f := params.DefaultFilters()
		spec.Filters = &f
		neutral := Render(spec, testSampleRate)

		testutil.RequireBitIdentical(t, neutral.Samples, bare.Samples)
	}
}

func TestSeedChangesNoise(t *testing.T) {
	s := params.New(1)
	s.Pitch.Frequency = 3000
	s.Tone = params.ToneFrom(params.White)
	s.Amplitude.Sustain = 0.05

	a := Render(s, testSampleRate)
	s.Seed = 2
	b := Render(s, testSampleRate)

	same := 0
	for i := range a.Samples {
		if a.Samples[i] == b.Samples[i] {
			same++
		}
	}
	if same == a.Len() {
		t.Fatal("different seeds rendered identical noise")
	}
}

func TestBuildStages(t *testing.T) {
	f := params.DefaultFilters()
	f.LowPassCutoff = 2000
	f.Compression = 0.5
	s := squareScenario()
	s.Filters = &f

	p, err := Build(s, core.DefaultProcessorConfig())
	if err != nil {
		t.Fatal(err)
	}

	want := []Stage{
		{StagePitch, true},
		{StageVoice, true},
		{StageAmplitude, true},
		{StageFlanger, false},
		{StageBitCrush, false},
		{StageLowPass, true},
		{StageHighPass, false},
		{StageCompression, true},
	}
	got := p.Stages()
	if len(got) != len(want) {
		t.Fatalf("Stages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Stages()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !p.Enabled(StageLowPass) || p.Enabled(StageFlanger) {
		t.Fatal("Enabled() disagrees with Stages()")
	}
	if p.Len() != 88200 {
		t.Fatalf("Len() = %d, want 88200", p.Len())
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(squareScenario(), core.ProcessorConfig{SampleRate: 0, BlockSize: 64}); err == nil {
		t.Fatal("Build(sr=0) error = nil")
	}
	s := squareScenario()
	s.Tone.Waveform = params.Waveform(40)
	if _, err := Build(s, core.DefaultProcessorConfig()); err == nil {
		t.Fatal("Build(invalid waveform) error = nil")
	}
}

func TestPipelineResetReplays(t *testing.T) {
	spec := testutil.RandomSpec(rng.New(8))
	spec.Tone = params.ToneFrom(params.Pink)
	spec.Amplitude = params.Amplitude{Sustain: 0.02}

	p, err := Build(spec, core.DefaultProcessorConfig())
	if err != nil {
		t.Fatal(err)
	}
	first := make([]float64, p.Len())
	for i := range first {
		first[i] = p.Tick()
	}
	if p.Position() != len(first) {
		t.Fatalf("Position() = %d, want %d", p.Position(), len(first))
	}

	p.Reset()
	second := make([]float64, p.Len())
	p.Process(second)
	testutil.RequireBitIdentical(t, second, first)
}

func TestHarmonicsKeepLevel(t *testing.T) {
	s := params.New(4)
	s.Pitch.Frequency = 200
	s.Tone = params.Tone{Waveform: params.Saw, Harmonics: 4, HarmonicsFalloff: 0.7}
	s.Amplitude.Sustain = 0.1

	buf := Render(s, testSampleRate)
	testutil.RequireInRange(t, "peak", buf.Peak(), 0.1, 1)
}

func TestRendererOptions(t *testing.T) {
	if _, err := NewRenderer(0); err == nil {
		t.Fatal("NewRenderer(0) error = nil")
	}
	if _, err := NewRenderer(testSampleRate, WithBlockSize(0)); err == nil {
		t.Fatal("WithBlockSize(0) error = nil")
	}
	if _, err := NewRenderer(testSampleRate, WithNormalize(1.5)); err == nil {
		t.Fatal("WithNormalize(1.5) error = nil")
	}

	rd, err := NewRenderer(22050, WithBlockSize(128), WithNormalize(0.5), nil)
	if err != nil {
		t.Fatal(err)
	}
	if rd.SampleRate() != 22050 || rd.BlockSize() != 128 {
		t.Fatalf("renderer = (%v, %d), want (22050, 128)", rd.SampleRate(), rd.BlockSize())
	}

	s := squareScenario()
	s.Amplitude = params.Amplitude{Attack: 0.05, Sustain: 0.05, Decay: 0.1}
	buf := rd.Render(s)
	if math.Abs(buf.Peak()-0.5) > 1e-12 {
		t.Fatalf("normalized peak = %v, want 0.5", buf.Peak())
	}
}

func TestRenderAll(t *testing.T) {
	r := rng.New(31)
	specs := make([]params.SoundSpec, 12)
	for i := range specs {
		specs[i] = testutil.RandomSpec(r)
	}

	got, err := RenderAll(context.Background(), specs, testSampleRate, 4)
	if err != nil {
		t.Fatalf("RenderAll() error: %v", err)
	}
	for i, spec := range specs {
		testutil.RequireBitIdentical(t, got[i].Samples, Render(spec, testSampleRate).Samples)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RenderAll(ctx, specs, testSampleRate, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("RenderAll(canceled) error = %v, want context.Canceled", err)
	}
}

func TestBufferConversions(t *testing.T) {
	b := Buffer{Samples: []float64{0.5, -0.25}, SampleRate: 2}
	if got := b.Duration().Seconds(); got != 1 {
		t.Fatalf("Duration() = %v s, want 1", got)
	}
	f := b.Float32()
	if f[0] != 0.5 || f[1] != -0.25 {
		t.Fatalf("Float32() = %v", f)
	}
	testutil.RequireSliceNearlyEqual(t, b.Interleave(2), []float64{0.5, 0.5, -0.25, -0.25}, 0)
	testutil.RequireSliceNearlyEqual(t, b.Interleave(0), b.Samples, 0)
	if got := (Buffer{}).Peak(); got != 0 {
		t.Fatalf("empty Peak() = %v, want 0", got)
	}
}

func BenchmarkRender(b *testing.B) {
	spec := squareScenario()
	f := params.DefaultFilters()
	f.LowPassCutoff = 4000
	f.FlangerOffset = 3
	spec.Filters = &f
	spec.Amplitude.Sustain = 0.25

	rd, _ := NewRenderer(testSampleRate)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rd.Render(spec)
	}
}
