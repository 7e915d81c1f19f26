// Package rng provides the seedable random source shared by preset sampling,
// mutation and the noise oscillators.
//
// A Rand wraps a PCG generator from math/rand/v2. PCG is a fixed algorithm,
// so a given seed yields the same draw sequence on every platform and Go
// release. No package-level state is used.
package rng

import (
	"fmt"
	"math/rand/v2"
)

// pcgIncrement is the stream selector passed to PCG alongside the seed.
const pcgIncrement = 0xda3e39cb94b95bdb

// Rand is a deterministic random source. It is not safe for concurrent use.
type Rand struct {
	r *rand.Rand
}

// New returns a Rand seeded with seed.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, pcgIncrement))}
}

// Uint64 returns a uniformly distributed 64-bit value.
func (r *Rand) Uint64() uint64 {
	return r.r.Uint64()
}

// Stream returns a fresh seed derived from the current state. Presets use it
// to give each generated SoundSpec its own render seed.
func (r *Rand) Stream() uint64 {
	return Hash(r.r.Uint64(), 0)
}

// Float01 returns a uniform value in [0, 1).
func (r *Rand) Float01() float64 {
	return r.r.Float64()
}

// Float returns a uniform value in [a, b). Float(a, a) returns a.
// It panics if a > b.
func (r *Rand) Float(a, b float64) float64 {
	if a > b {
		panic(fmt.Sprintf("rng: Float range [%g, %g) has min > max", a, b))
	}

	return a + (b-a)*r.r.Float64()
}

// Bool returns true with probability p. p <= 0 never and p >= 1 always
// returns true, but one value is drawn either way so sequences stay aligned.
func (r *Rand) Bool(p float64) bool {
	return r.r.Float64() < p
}

// Int returns a uniform integer in the inclusive range [a, b].
// It panics if a > b.
func (r *Rand) Int(a, b int) int {
	if a > b {
		panic(fmt.Sprintf("rng: Int range [%d, %d] has min > max", a, b))
	}

	span := uint64(b-a) + 1
	if span == 0 {
		return a + int(r.r.Uint64())
	}

	return a + int(r.r.Uint64N(span))
}

// Index returns a uniform index in [0, n). It panics if n <= 0.
func (r *Rand) Index(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: Index bound must be > 0: %d", n))
	}

	return r.r.IntN(n)
}

// Hash mixes seed and salt into a well-distributed 64-bit value
// (SplitMix64 finaliser). Pipeline stages derive their private seeds from
// Hash(spec seed, stage index).
func Hash(seed, salt uint64) uint64 {
	z := seed + 0x9e3779b97f4a7c15*(salt+1)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
