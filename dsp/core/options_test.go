package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(48000), WithBlockSize(256))
	if cfg.SampleRate != 48000 {
		t.Fatalf("sample rate = %v, want 48000", cfg.SampleRate)
	}
	if cfg.BlockSize != 256 {
		t.Fatalf("block size = %d, want 256", cfg.BlockSize)
	}
	if cfg.Nyquist() != 24000 {
		t.Fatalf("Nyquist() = %v, want 24000", cfg.Nyquist())
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
	if def.SampleRate != DefaultSampleRate {
		t.Fatalf("default sample rate = %v, want %v", def.SampleRate, DefaultSampleRate)
	}
}

func TestSampleDuration(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(50))
	if got := cfg.SampleDuration(); got != 0.02 {
		t.Fatalf("SampleDuration() = %v, want 0.02", got)
	}
	if got := (ProcessorConfig{}).SampleDuration(); got != 0 {
		t.Fatalf("zero config SampleDuration() = %v, want 0", got)
	}
}
