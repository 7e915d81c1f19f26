// Package preset samples sound specs for common game sound categories.
//
// Every generator draws all of its randomness from the given rng.Rand, so a
// category and RNG seed fully determine the resulting spec. The spec's own
// render seed is drawn from the same stream.
package preset

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
)

// Category names a preset generator.
type Category int

const (
	Jump Category = iota
	Explosion
	Powerup
	Laser
	Pickup
	Hit
	Blip
	Random

	categoryCount
)

var categoryNames = [categoryCount]string{
	"jump", "explosion", "powerup", "laser", "pickup", "hit", "blip", "random",
}

// Generator samples a spec from r.
type Generator func(r *rng.Rand) params.SoundSpec

var generators = [categoryCount]Generator{
	Jump:      JumpSpec,
	Explosion: ExplosionSpec,
	Powerup:   PowerupSpec,
	Laser:     LaserSpec,
	Pickup:    PickupSpec,
	Hit:       HitSpec,
	Blip:      BlipSpec,
	Random:    RandomSpec,
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}

	return 0, fmt.Errorf("preset: unknown category %q (want one of %s)",
		name, strings.Join(categoryNames[:], ", "))
}

// Categories lists all categories in declaration order.
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}

	return out
}

// Generator returns the sampler of c, or nil for an unknown category.
func (c Category) Generator() Generator {
	if c < 0 || c >= categoryCount {
		return nil
	}

	return generators[c]
}

// Generate samples a spec of category c.
func Generate(c Category, r *rng.Rand) (params.SoundSpec, error) {
	gen := c.Generator()
	if gen == nil {
		return params.SoundSpec{}, fmt.Errorf("preset: unknown category %d", int(c))
	}

	return gen(r), nil
}

// between draws uniformly between a and b in either order.
func between(r *rng.Rand, a, b float64) float64 {
	if a > b {
		a, b = b, a
	}

	return r.Float(a, b)
}

// punch draws a punch amount half of the time.
func punch(r *rng.Rand) float64 {
	if r.Bool(0.5) {
		return r.Float01()
	}

	return 0
}

// pickTone picks a waveform from set. Sets that allow a square wave also get
// a random duty cycle and duty sweep.
func pickTone(set params.WaveformSet, r *rng.Rand) params.Tone {
	tone := params.ToneFrom(params.PickWaveform(set, r))
	if set.Contains(params.Square) {
		tone.SquareDuty = r.Float01()
		tone.SquareDutySweep = r.Float(-1, 1)
	}

	return tone
}

// flanger draws a flanger setting with offsets up to maxMs milliseconds.
func flanger(f *params.Filters, r *rng.Rand, maxMs float64) {
	f.FlangerOffset = r.Float(0, maxMs)
	f.FlangerOffsetSweep = r.Float(-maxMs, maxMs)
}
