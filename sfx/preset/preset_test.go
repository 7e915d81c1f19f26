package preset

import (
	"reflect"
	"testing"

	"github.com/cwbudde/algo-sfx/internal/testutil"
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
	"github.com/cwbudde/algo-sfx/sfx/synth"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(" " + c.String() + " ")
		if err != nil {
			t.Fatalf("ParseCategory(%q) error: %v", c, err)
		}
		if got != c {
			t.Fatalf("ParseCategory(%q) = %v, want %v", c, got, c)
		}
	}

	if got, err := ParseCategory("LASER"); err != nil || got != Laser {
		t.Fatalf("ParseCategory(LASER) = %v, %v", got, err)
	}
	if _, err := ParseCategory("coin"); err == nil {
		t.Fatal("ParseCategory(coin) expected error")
	}
}

func TestGenerateUnknownCategory(t *testing.T) {
	if _, err := Generate(Category(42), rng.New(1)); err == nil {
		t.Fatal("Generate(42) expected error")
	}
	if got := Category(-1).String(); got != "category(-1)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, c := range Categories() {
		a, err := Generate(c, rng.New(7))
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		b, _ := Generate(c, rng.New(7))
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%v: same seed gave\n%v\n%v", c, a, b)
		}

		other, _ := Generate(c, rng.New(8))
		if reflect.DeepEqual(a, other) {
			t.Fatalf("%v: seeds 7 and 8 gave identical specs", c)
		}
	}
}

func TestCategoryRanges(t *testing.T) {
	tests := []struct {
		cat   Category
		check func(t *testing.T, s params.SoundSpec)
	}{
		{Jump, func(t *testing.T, s params.SoundSpec) {
			testutil.RequireInRange(t, "frequency", s.Pitch.Frequency, 100, 2000)
			testutil.RequireInRange(t, "sweep", s.Pitch.FrequencySweep, 200, 2000)
			testutil.RequireInRange(t, "sustain", s.Amplitude.Sustain, 0.02, 0.1)
			testutil.RequireInRange(t, "decay", s.Amplitude.Decay, 0.05, 0.4)
			set := params.SetOf(params.Sine, params.Square, params.Whistle, params.Breaker)
			if !set.Contains(s.Tone.Waveform) {
				t.Fatalf("waveform %v", s.Tone.Waveform)
			}
			testutil.RequireInRange(t, "duty", s.Tone.SquareDuty, 0, 1)
			testutil.RequireInRange(t, "duty sweep", s.Tone.SquareDutySweep, -1, 1)
		}},
		{Explosion, func(t *testing.T, s params.SoundSpec) {
			if !s.Tone.Waveform.IsNoise() {
				t.Fatalf("waveform %v is not noise", s.Tone.Waveform)
			}
			lo, hi := 1000.0, 10000.0
			if s.Tone.Waveform == params.Brown {
				lo, hi = 10000, 20000
			}
			testutil.RequireInRange(t, "frequency", s.Pitch.Frequency, lo, hi)
			testutil.RequireInRange(t, "sweep", s.Pitch.FrequencySweep, -5000, -1000)
			testutil.RequireInRange(t, "delta sweep", s.Pitch.FrequencyDeltaSweep, -5000, -1000)
			testutil.RequireInRange(t, "tremolo depth", s.Amplitude.TremoloDepth, 0, 1)
			if s.Filters == nil {
				t.Fatal("filters = nil")
			}
		}},
		{Powerup, func(t *testing.T, s params.SoundSpec) {
			testutil.RequireInRange(t, "frequency", s.Pitch.Frequency, 500, 2000)
			testutil.RequireInRange(t, "repeat", s.Pitch.RepeatFrequency, 0, 20)
			if s.Tone.Waveform.IsNoise() {
				t.Fatalf("waveform %v", s.Tone.Waveform)
			}
		}},
		{Laser, func(t *testing.T, s params.SoundSpec) {
			testutil.RequireInRange(t, "sweep", s.Pitch.FrequencySweep, -2000, -200)
			testutil.RequireInRange(t, "vibrato", s.Pitch.VibratoDepth, 0, 0.5*s.Pitch.Frequency)
			testutil.RequireInRange(t, "decay", s.Amplitude.Decay, 0.02, 0.1)
		}},
		{Pickup, func(t *testing.T, s params.SoundSpec) {
			if s.Pitch.Jump1.Onset != 0 {
				testutil.RequireInRange(t, "jump1", s.Pitch.Jump1.Onset, 0.1, 0.3)
			}
			if s.Pitch.Jump2.Onset != 0 {
				testutil.RequireInRange(t, "jump2", s.Pitch.Jump2.Onset, 0.2, 0.4)
			}
		}},
		{Hit, func(t *testing.T, s params.SoundSpec) {
			testutil.RequireInRange(t, "frequency", s.Pitch.Frequency, 500, 1000)
			testutil.RequireInRange(t, "sweep", s.Pitch.FrequencySweep, -1000, -200)
			testutil.RequireInRange(t, "low-pass sweep", s.Filters.LowPassSweep, -nyquist, nyquist)
		}},
		{Blip, func(t *testing.T, s params.SoundSpec) {
			testutil.RequireInRange(t, "frequency", s.Pitch.Frequency, 100, 3000)
			testutil.RequireInRange(t, "duty", s.Tone.SquareDuty, 0.1, 0.9)
			testutil.RequireInRange(t, "harmonics", float64(s.Tone.Harmonics), 0, 5)
			if s.Filters != nil {
				t.Fatalf("filters = %v, want nil", s.Filters)
			}
		}},
		{Random, func(t *testing.T, s params.SoundSpec) {
			f := s.Filters
			if f.LowPassEngaged() && f.HighPassEngaged() {
				t.Fatalf("low-pass and high-pass both engaged: %v", f)
			}
			if s.Pitch.Jump2.Onset > s.Pitch.Jump1.Onset {
				t.Fatalf("jump onsets out of order: %v", s.Pitch)
			}
			testutil.RequireInRange(t, "bit crush", f.BitCrush, 0, 16)
			testutil.RequireInRange(t, "harmonics", float64(s.Tone.Harmonics), 0, 5)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.cat.String(), func(t *testing.T) {
			r := rng.New(2024)
			for i := 0; i < 200; i++ {
				s, err := Generate(tc.cat, r)
				if err != nil {
					t.Fatal(err)
				}
				if s.Duration() <= 0 && tc.cat != Random {
					t.Fatalf("draw %d: duration %v", i, s.Duration())
				}
				tc.check(t, s)
			}
		})
	}
}

func TestRandomRepeatAtLeastOneCycle(t *testing.T) {
	r := rng.New(5)
	for i := 0; i < 500; i++ {
		s := RandomSpec(r)
		if s.Pitch.RepeatFrequency == 0 {
			continue
		}
		if got := s.Pitch.RepeatFrequency * s.Duration(); got < 1-1e-9 && s.Pitch.RepeatFrequency < 100 {
			t.Fatalf("draw %d: repeat %v over %vs is less than one cycle",
				i, s.Pitch.RepeatFrequency, s.Duration())
		}
	}
}

func TestRandomMaySkipEveryEnvelopeSegment(t *testing.T) {
	r := rng.New(3)
	for i := 0; i < 2000; i++ {
		s := RandomSpec(r)
		if s.Duration() == 0 {
			if got := synth.Render(s, 8000); got.Len() != 0 {
				t.Fatalf("zero-length spec rendered %d samples", got.Len())
			}
			return
		}
	}
	t.Fatal("no zero-length spec in 2000 draws")
}

func TestPresetsRender(t *testing.T) {
	const sr = 8000

	for _, c := range Categories() {
		r := rng.New(11)
		for i := 0; i < 5; i++ {
			s, _ := Generate(c, r)
			buf := synth.Render(s, sr)
			if buf.Len() != synth.SampleCount(s.Duration(), sr) {
				t.Fatalf("%v: Len() = %d, want %d", c, buf.Len(), synth.SampleCount(s.Duration(), sr))
			}
			if buf.Len() == 0 && c != Random {
				t.Fatalf("%v: empty render for %v", c, s)
			}
			testutil.RequireFinite(t, buf.Samples)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	r := rng.New(1)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Generate(Category(i%int(categoryCount)), r)
	}
}
