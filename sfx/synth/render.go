package synth

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/sfx/params"
)

const maxRenderBlockSize = 1 << 16

// SampleCount returns ceil(duration*sampleRate), or 0 for a non-positive
// duration or an invalid sample rate. Products within 1e-6 of an integer
// count as that integer.
func SampleCount(duration, sampleRate float64) int {
	if !(duration > 0) || !(sampleRate > 0) || math.IsInf(duration, 0) || math.IsInf(sampleRate, 0) {
		return 0
	}

	n := duration * sampleRate
	if r := math.Round(n); math.Abs(n-r) < 1e-6 {
		n = r
	}

	return int(math.Ceil(n))
}

// RendererOption mutates renderer construction parameters.
type RendererOption func(*rendererConfig) error

type rendererConfig struct {
	blockSize int
	normalize float64
}

// WithBlockSize sets the number of samples rendered per block in
// [1, 65536]. It does not change the output.
func WithBlockSize(blockSize int) RendererOption {
	return func(cfg *rendererConfig) error {
		if blockSize < 1 || blockSize > maxRenderBlockSize {
			return fmt.Errorf("renderer block size must be in [1, %d]: %d", maxRenderBlockSize, blockSize)
		}

		cfg.blockSize = blockSize

		return nil
	}
}

// WithNormalize scales every rendered buffer so its peak equals peak, in
// (0, 1]. Silent buffers are left untouched.
func WithNormalize(peak float64) RendererOption {
	return func(cfg *rendererConfig) error {
		if !(peak > 0) || peak > 1 {
			return fmt.Errorf("renderer normalize peak must be in (0, 1]: %f", peak)
		}

		cfg.normalize = peak

		return nil
	}
}

// Renderer renders sound specs at a fixed sample rate.
type Renderer struct {
	cfg       core.ProcessorConfig
	normalize float64
}

// NewRenderer creates a renderer for the given sample rate.
func NewRenderer(sampleRate float64, opts ...RendererOption) (*Renderer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("renderer sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := rendererConfig{blockSize: core.DefaultBlockSize}
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Renderer{
		cfg: core.ApplyProcessorOptions(
			core.WithSampleRate(sampleRate),
			core.WithBlockSize(cfg.blockSize),
		),
		normalize: cfg.normalize,
	}, nil
}

// Render produces the samples of spec. It never fails: specs that cannot be
// built render as an empty buffer.
func (r *Renderer) Render(spec params.SoundSpec) Buffer {
	buf := Buffer{SampleRate: r.cfg.SampleRate}

	n := SampleCount(spec.Duration(), r.cfg.SampleRate)
	if n == 0 {
		return buf
	}

	p, err := Build(spec, r.cfg)
	if err != nil {
		return buf
	}

	buf.Samples = make([]float64, n)
	for start := 0; start < n; start += r.cfg.BlockSize {
		end := min(start+r.cfg.BlockSize, n)
		p.Process(buf.Samples[start:end])
	}

	if r.normalize > 0 {
		if peak := vecmath.MaxAbs(buf.Samples); peak > 0 {
			vecmath.ScaleBlockInPlace(buf.Samples, r.normalize/peak)
		}
	}

	return buf
}

// RenderAll renders specs concurrently with at most workers goroutines.
// Results keep the order of specs. It stops early when ctx is done.
func (r *Renderer) RenderAll(ctx context.Context, specs []params.SoundSpec, workers int) ([]Buffer, error) {
	if workers < 1 {
		workers = 1
	}

	out := make([]Buffer, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range specs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out[i] = r.Render(specs[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// SampleRate returns the output sample rate in Hz.
func (r *Renderer) SampleRate() float64 { return r.cfg.SampleRate }

// BlockSize returns the render block size.
func (r *Renderer) BlockSize() int { return r.cfg.BlockSize }

// Render renders spec at sampleRate with default settings. An invalid sample
// rate yields an empty buffer.
func Render(spec params.SoundSpec, sampleRate float64) Buffer {
	r, err := NewRenderer(sampleRate)
	if err != nil {
		return Buffer{SampleRate: sampleRate}
	}

	return r.Render(spec)
}

// RenderAll renders specs concurrently at sampleRate with default settings.
func RenderAll(ctx context.Context, specs []params.SoundSpec, sampleRate float64, workers int) ([]Buffer, error) {
	r, err := NewRenderer(sampleRate)
	if err != nil {
		return nil, err
	}

	return r.RenderAll(ctx, specs, workers)
}

// DefaultConfig returns the processor configuration used by Render.
func DefaultConfig() core.ProcessorConfig {
	return core.DefaultProcessorConfig()
}
