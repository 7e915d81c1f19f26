// Package wavfile writes and reads rendered sounds as PCM WAV files.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-sfx/sfx/synth"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

// DefaultBitDepth is the sample width used by the CLI.
const DefaultBitDepth = 16

// ErrInvalidFile is returned by Decode for input that is not a PCM WAV file.
var ErrInvalidFile = errors.New("wavfile: not a valid wav file")

// Encode writes buf as mono integer PCM of the given bit depth (16, 24 or
// 32). Samples outside [-1, 1] are clipped.
func Encode(w io.WriteSeeker, buf synth.Buffer, bitDepth int) error {
	if err := validateBitDepth(bitDepth); err != nil {
		return err
	}

	sr := int(math.Round(buf.SampleRate))
	if sr <= 0 {
		return fmt.Errorf("wavfile: sample rate must be > 0: %f", buf.SampleRate)
	}

	enc := wav.NewEncoder(w, sr, bitDepth, 1, pcmFormat)

	ib := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sr},
		Data:           Quantize(buf.Samples, bitDepth),
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(ib); err != nil {
		_ = enc.Close()
		return fmt.Errorf("wavfile: write: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavfile: close: %w", err)
	}

	return nil
}

// WriteFile encodes buf into a new file at path.
func WriteFile(path string, buf synth.Buffer, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavfile: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wavfile: %w", cerr)
		}
	}()

	return Encode(f, buf, bitDepth)
}

// Quantize converts samples to signed integers of the given width, clipping
// to full scale. NaN becomes 0.
func Quantize(samples []float64, bitDepth int) []int {
	full := float64(int64(1)<<(bitDepth-1) - 1)
	out := make([]int, len(samples))

	for i, s := range samples {
		switch {
		case math.IsNaN(s):
			s = 0
		case s > 1:
			s = 1
		case s < -1:
			s = -1
		}

		out[i] = int(math.Round(s * full))
	}

	return out
}

// Decode reads a 16, 24 or 32-bit PCM WAV stream. Multi-channel files are
// averaged to mono.
func Decode(r io.ReadSeeker) (synth.Buffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return synth.Buffer{}, ErrInvalidFile
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return synth.Buffer{}, fmt.Errorf("wavfile: read: %w", err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return synth.Buffer{}, ErrInvalidFile
	}

	bitDepth := int(dec.BitDepth)
	if err := validateBitDepth(bitDepth); err != nil {
		return synth.Buffer{}, err
	}

	scale := 1 / float64(int64(1)<<(bitDepth-1)-1)
	frames := len(ib.Data) / channels
	out := make([]float64, frames)

	for i := range out {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(ib.Data[i*channels+c])
		}

		out[i] = sum * scale / float64(channels)
	}

	return synth.Buffer{Samples: out, SampleRate: float64(dec.SampleRate)}, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (synth.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return synth.Buffer{}, fmt.Errorf("wavfile: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func validateBitDepth(bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("wavfile: unsupported bit depth %d (want 16, 24 or 32)", bitDepth)
	}
}
