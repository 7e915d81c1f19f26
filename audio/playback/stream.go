// Package playback plays rendered sounds on the default audio device.
//
// Build with -tags headless to drop the device backend; [NewPlayer] then
// returns [ErrUnavailable] and only [Stream] is usable.
package playback

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-sfx/sfx/synth"
)

// Channels is the number of interleaved output channels.
const Channels = 2

const bytesPerSample = 4

// ErrUnavailable is returned by NewPlayer in headless builds.
var ErrUnavailable = errors.New("playback: audio output not available in this build")

// ErrClosed is returned by Play after Close.
var ErrClosed = errors.New("playback: player closed")

// Stream reads a mono buffer as interleaved float32 little-endian frames,
// duplicating each sample on every channel. It returns io.EOF after the
// last frame.
type Stream struct {
	frames []float64 // interleaved
	pos    int       // byte offset
}

// NewStream returns a stream over buf with the given channel count.
func NewStream(buf synth.Buffer, channels int) (*Stream, error) {
	if channels < 1 {
		return nil, fmt.Errorf("playback: channel count must be >= 1: %d", channels)
	}

	return &Stream{frames: buf.Interleave(channels)}, nil
}

// Read implements io.Reader. Partial frames are never emitted unless p is
// smaller than one sample.
func (s *Stream) Read(p []byte) (int, error) {
	total := s.Size()
	if s.pos >= total {
		return 0, io.EOF
	}

	n := 0
	for n+bytesPerSample <= len(p) && s.pos < total {
		v := float32(clamp(s.frames[s.pos/bytesPerSample]))
		binary.LittleEndian.PutUint32(p[n:], math.Float32bits(v))
		n += bytesPerSample
		s.pos += bytesPerSample
	}

	if n == 0 {
		return 0, io.ErrShortBuffer
	}

	return n, nil
}

// Size returns the total stream length in bytes.
func (s *Stream) Size() int {
	return len(s.frames) * bytesPerSample
}

// Remaining returns the number of unread bytes.
func (s *Stream) Remaining() int {
	return s.Size() - s.pos
}

// Reset rewinds the stream.
func (s *Stream) Reset() {
	s.pos = 0
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
