// Package synth turns a params.SoundSpec into audio.
//
// Build composes a spec into a Pipeline: an ordered list of tagged stages
// (pitch curve, voice, amplitude envelope, then the optional filter stages)
// that is evaluated once per sample. Stages whose parameters sit at their
// neutral values are disabled and cost nothing.
//
// Rendering is deterministic: every stateful stage is reseeded from the
// spec's seed after construction, so the same spec always yields the same
// samples on every platform.
package synth
