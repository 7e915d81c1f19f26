package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-sfx/audio/wavfile"
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/synth"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--log-level", "error", "--sample-rate", "8000"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"explosion", "random", "brown", "waveform (noise)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("list output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "list", "--fields")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "pitch.frequency") || !strings.Contains(out, "STEP") {
		t.Fatalf("list --fields output:\n%s", out)
	}
}

func TestGenerateWritesSpecAndWAV(t *testing.T) {
	dir := t.TempDir()
	wav := filepath.Join(dir, "jump.wav")
	spec := filepath.Join(dir, "jump.yaml")

	if _, err := run(t, "generate", "jump", "--seed", "5", "--out", wav, "--spec-out", spec); err != nil {
		t.Fatalf("generate: %v", err)
	}

	s, err := params.Load(spec)
	if err != nil {
		t.Fatal(err)
	}

	buf, err := wavfile.ReadFile(wav)
	if err != nil {
		t.Fatal(err)
	}
	if want := synth.SampleCount(s.Duration(), 8000); buf.Len() != want {
		t.Fatalf("wav has %d samples, want %d", buf.Len(), want)
	}

	// Same seed, same spec.
	spec2 := filepath.Join(dir, "again.json")
	if _, err := run(t, "generate", "jump", "--seed", "5", "--out", wav, "--spec-out", spec2); err != nil {
		t.Fatal(err)
	}
	s2, err := params.Load(spec2)
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != s2.String() {
		t.Fatalf("same seed gave %v and %v", s, s2)
	}
}

func TestGenerateToStdout(t *testing.T) {
	out, err := run(t, "generate", "blip", "--seed", "1", "--out", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "RIFF") {
		t.Fatalf("stdout does not hold wav data: %q", out[:min(len(out), 16)])
	}
}

func TestGenerateScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "beep.lua")
	src := `function generate(rng)
  return { pitch = { frequency = rng:float(400, 500) }, amplitude = { sustain = 0.05 } }
end`
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	wav := filepath.Join(dir, "beep.wav")
	if _, err := run(t, "generate", "--script", script, "--seed", "2", "--out", wav); err != nil {
		t.Fatalf("generate --script: %v", err)
	}
	if _, err := os.Stat(wav); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateArgErrors(t *testing.T) {
	if _, err := run(t, "generate"); err == nil {
		t.Fatal("generate without category expected error")
	}
	if _, err := run(t, "generate", "jump", "--script", "x.lua"); err == nil {
		t.Fatal("generate with category and script expected error")
	}
	if _, err := run(t, "generate", "kazoo"); err == nil {
		t.Fatal("generate kazoo expected error")
	}
	if _, err := run(t, "--log-level", "loud", "list"); err == nil {
		t.Fatal("bad log level expected error")
	}
	if _, err := run(t, "--sample-rate", "0", "list"); err == nil {
		t.Fatal("zero sample rate expected error")
	}
}

func writeSpec(t *testing.T, dir, name string) string {
	t.Helper()

	s := params.New(9)
	s.Pitch.Frequency = 440
	s.Amplitude.Sustain = 0.1
	s.Amplitude.Decay = 0.1

	path := filepath.Join(dir, name)
	if err := params.Save(path, s); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	a := writeSpec(t, dir, "a.json")
	b := writeSpec(t, dir, "b.yaml")

	if _, err := run(t, "render", a, b, "--jobs", "2"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, p := range []string{"a.wav", "b.wav"} {
		buf, err := wavfile.ReadFile(filepath.Join(dir, p))
		if err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 1600 {
			t.Fatalf("%s: %d samples, want 1600", p, buf.Len())
		}
	}

	if _, err := run(t, "render", a, b, "--out", "x.wav"); err == nil {
		t.Fatal("render --out with two specs expected error")
	}
}

func TestMutate(t *testing.T) {
	dir := t.TempDir()
	src := writeSpec(t, dir, "base.yaml")
	outDir := filepath.Join(dir, "vars")

	if _, err := run(t, "mutate", src, "--seed", "3", "--count", "3", "--out-dir", outDir); err != nil {
		t.Fatalf("mutate: %v", err)
	}

	for i := 1; i <= 3; i++ {
		stem := filepath.Join(outDir, fmt.Sprintf("base-%02d", i))
		s, err := params.Load(stem + ".yaml")
		if err != nil {
			t.Fatal(err)
		}
		if s.Seed != 9 {
			t.Fatalf("variation %d seed = %d, want 9", i, s.Seed)
		}
		if _, err := os.Stat(stem + ".wav"); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := run(t, "mutate", src, "--count", "0"); err == nil {
		t.Fatal("mutate --count 0 expected error")
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	src := writeSpec(t, dir, "tone.json")

	out, err := run(t, "inspect", src)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"440 hz", "stages:", "voice", "dominant:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("inspect output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "inspect", src, "--dump", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "frequency: 440") {
		t.Fatalf("inspect --dump yaml:\n%s", out)
	}

	wav := filepath.Join(dir, "tone.wav")
	if _, err := run(t, "render", src); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "inspect", wav)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "samples:      1600") {
		t.Fatalf("inspect wav output:\n%s", out)
	}
}

func TestPlayRejectsUnknownSource(t *testing.T) {
	if _, err := run(t, "play", "not-a-category"); err == nil {
		t.Fatal("play not-a-category expected error")
	}
}
