// Package interp provides the fractional interpolation kernel used by the
// delay line behind the flanger stage.
package interp
