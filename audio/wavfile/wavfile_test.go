package wavfile

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-sfx/internal/testutil"
	"github.com/cwbudde/algo-sfx/sfx/synth"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		in       float64
		bitDepth int
		want     int
	}{
		{0, 16, 0},
		{1, 16, 32767},
		{-1, 16, -32767},
		{2, 16, 32767},
		{-3, 16, -32767},
		{0.5, 16, 16384},
		{1, 24, 8388607},
		{1, 32, 2147483647},
	}

	for _, tc := range tests {
		got := Quantize([]float64{tc.in}, tc.bitDepth)[0]
		if got != tc.want {
			t.Fatalf("Quantize(%v, %d) = %d, want %d", tc.in, tc.bitDepth, got, tc.want)
		}
	}

	nan := Quantize([]float64{math.NaN()}, 16)
	if nan[0] != 0 {
		t.Fatalf("Quantize(NaN) = %d, want 0", nan[0])
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := synth.Buffer{
		Samples:    testutil.DeterministicSine(440, 22050, 0.8, 2205),
		SampleRate: 22050,
	}

	for _, bits := range []int{16, 24, 32} {
		path := filepath.Join(dir, "tone.wav")
		if err := WriteFile(path, in, bits); err != nil {
			t.Fatalf("WriteFile(%d) error: %v", bits, err)
		}

		out, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%d) error: %v", bits, err)
		}
		if out.SampleRate != 22050 {
			t.Fatalf("SampleRate = %v, want 22050", out.SampleRate)
		}

		tol := 1.0 / float64(int64(1)<<(bits-1)-1)
		testutil.RequireSliceNearlyEqual(t, out.Samples, in.Samples, tol)
	}
}

func TestEncodeErrors(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	buf := synth.Buffer{Samples: []float64{0}, SampleRate: 44100}
	if err := Encode(f, buf, 8); err == nil || !strings.Contains(err.Error(), "bit depth") {
		t.Fatalf("Encode(8 bit) error = %v", err)
	}

	buf.SampleRate = 0
	if err := Encode(f, buf, 16); err == nil {
		t.Fatal("Encode(sr=0) expected error")
	}
}

func TestDecodeInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("definitely not RIFF data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadFile(path); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("ReadFile() error = %v, want ErrInvalidFile", err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("ReadFile(missing) expected error")
	}
}

func TestBytesMatchesFile(t *testing.T) {
	buf := synth.Buffer{Samples: testutil.DeterministicNoise(4, 0.5, 1000), SampleRate: 44100}

	data, err := Bytes(buf, 24)
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "noise.wav")
	if err := WriteFile(path, buf, 24); err != nil {
		t.Fatal(err)
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(want) {
		t.Fatalf("Bytes() = %d bytes, file = %d bytes; contents differ", len(data), len(want))
	}
	if !strings.HasPrefix(string(data), "RIFF") {
		t.Fatalf("Bytes() does not start with RIFF: %q", data[:4])
	}
}
