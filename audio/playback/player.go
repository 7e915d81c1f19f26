//go:build !headless

package playback

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/cwbudde/algo-sfx/sfx/synth"
	"github.com/ebitengine/oto/v3"
)

const pollInterval = 10 * time.Millisecond

var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoRate int
	otoErr  error
)

// Player plays buffers on the default output device. The device is opened
// once per process, so every Player must use the same sample rate.
type Player struct {
	ctx        *oto.Context
	sampleRate int
	mu         sync.Mutex
}

// NewPlayer opens the output device at sampleRate.
func NewPlayer(sampleRate int) (*Player, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("playback: sample rate must be > 0: %d", sampleRate)
	}

	otoOnce.Do(func() {
		var ready chan struct{}
		otoCtx, ready, otoErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: Channels,
			Format:       oto.FormatFloat32LE,
		})
		if otoErr == nil {
			<-ready
			otoRate = sampleRate
		}
	})

	if otoErr != nil {
		return nil, fmt.Errorf("playback: open device: %w", otoErr)
	}

	if otoRate != sampleRate {
		return nil, fmt.Errorf("playback: device already open at %d Hz, requested %d Hz", otoRate, sampleRate)
	}

	return &Player{ctx: otoCtx, sampleRate: sampleRate}, nil
}

// SampleRate returns the device sample rate.
func (p *Player) SampleRate() int { return p.sampleRate }

// Play blocks until buf has been played or ctx is done. Calls are
// serialized.
func (p *Player) Play(ctx context.Context, buf synth.Buffer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctx == nil {
		return ErrClosed
	}

	if int(math.Round(buf.SampleRate)) != p.sampleRate {
		return fmt.Errorf("playback: buffer rate %.0f Hz does not match device rate %d Hz",
			buf.SampleRate, p.sampleRate)
	}

	stream, err := NewStream(buf, Channels)
	if err != nil {
		return err
	}

	op := p.ctx.NewPlayer(stream)
	defer op.Close()

	op.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for op.IsPlaying() {
		select {
		case <-ctx.Done():
			op.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}

// Close releases the player. The shared device stays open until the
// process exits.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ctx = nil

	return nil
}
