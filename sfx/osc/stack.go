package osc

import (
	"math"

	"github.com/cwbudde/algo-sfx/sfx/rng"
)

// Stack sums a fundamental voice and its first n harmonics. Harmonic i is fed
// (i+1) times the input frequency and weighted falloff^i, normalized so the
// weights sum to one.
type Stack struct {
	voices  []Voice
	weights []float64
}

// NewStack builds n+1 voices with newVoice. Negative n is treated as zero and
// negative falloff as zero.
func NewStack(newVoice func() (Voice, error), n int, falloff float64) (*Stack, error) {
	if n < 0 {
		n = 0
	}

	if falloff < 0 || math.IsNaN(falloff) {
		falloff = 0
	}

	s := &Stack{
		voices:  make([]Voice, n+1),
		weights: make([]float64, n+1),
	}

	sum := 0.0
	for i := range s.voices {
		v, err := newVoice()
		if err != nil {
			return nil, err
		}

		s.voices[i] = v
		s.weights[i] = math.Pow(falloff, float64(i))
		sum += s.weights[i]
	}

	for i := range s.weights {
		s.weights[i] /= sum
	}

	return s, nil
}

// Next implements Voice.
func (s *Stack) Next(freqHz, duty float64) float64 {
	out := 0.0
	for i, v := range s.voices {
		out += s.weights[i] * v.Next(freqHz*float64(i+1), duty)
	}

	return out
}

// Reset resets every voice.
func (s *Stack) Reset() {
	for _, v := range s.voices {
		v.Reset()
	}
}

// Reseed gives each voice its own seed derived from hash.
func (s *Stack) Reseed(hash uint64) {
	for i, v := range s.voices {
		v.Reseed(rng.Hash(hash, uint64(i)))
	}
}

// Len returns the number of voices, fundamental included.
func (s *Stack) Len() int { return len(s.voices) }

// Weights returns a copy of the normalized voice weights.
func (s *Stack) Weights() []float64 {
	return append([]float64(nil), s.weights...)
}
