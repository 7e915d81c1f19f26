// Package envelope evaluates the time-varying control curves of a sound:
// pitch, amplitude, duty cycle and linear filter-parameter sweeps.
//
// Curves are small value types with an Evaluate method over absolute time in
// seconds. They hold no state and may be shared freely.
package envelope
