// Package osc provides the primitive oscillators used by the sound-effect
// synthesizer.
//
// Every oscillator takes its instantaneous frequency in Hz per sample, keeps
// its own phase accumulator in [0, 1) and is restarted through Reseed, so a
// rendered voice is a pure function of its inputs and the seed it was given.
package osc
