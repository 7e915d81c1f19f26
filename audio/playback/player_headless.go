//go:build headless

package playback

import (
	"context"

	"github.com/cwbudde/algo-sfx/sfx/synth"
)

// Player is unavailable in headless builds.
type Player struct{}

// NewPlayer always returns ErrUnavailable.
func NewPlayer(sampleRate int) (*Player, error) {
	return nil, ErrUnavailable
}

// SampleRate returns 0.
func (p *Player) SampleRate() int { return 0 }

// Play always returns ErrUnavailable.
func (p *Player) Play(ctx context.Context, buf synth.Buffer) error {
	return ErrUnavailable
}

// Close is a no-op.
func (p *Player) Close() error { return nil }
