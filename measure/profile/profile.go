// Package profile summarizes a rendered sound in the time and frequency
// domains.
package profile

import (
	"errors"
	"fmt"
	"math"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// MaxFFTSize bounds the spectrum analysis. Longer signals are analyzed over
// their first MaxFFTSize samples.
const MaxFFTSize = 1 << 16

// RolloffFraction is the share of spectral energy below Report.Rolloff.
const RolloffFraction = 0.85

// ErrEmpty is returned by Analyze for a signal without samples.
var ErrEmpty = errors.New("profile: empty signal")

// Report holds the measurements of one signal. Level fields in dB are
// relative to full scale and -Inf for silence.
type Report struct {
	Samples    int
	SampleRate float64
	Duration   float64 // seconds

	Peak          float64
	PeakDBFS      float64
	RMS           float64
	RMSDBFS       float64
	CrestFactor   float64 // peak / RMS, 0 for silence
	DC            float64
	ZeroCrossings int

	FFTSize           int
	Centroid          float64 // Hz
	Rolloff           float64 // Hz
	Flatness          float64 // 0..1
	DominantFrequency float64 // Hz, parabolic-interpolated peak bin
}

// Analyze measures samples recorded at sampleRate.
func Analyze(samples []float64, sampleRate float64) (Report, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Report{}, fmt.Errorf("profile: sample rate must be > 0 and finite: %f", sampleRate)
	}

	n := len(samples)
	if n == 0 {
		return Report{}, ErrEmpty
	}

	r := Report{
		Samples:    n,
		SampleRate: sampleRate,
		Duration:   float64(n) / sampleRate,
	}

	energy := vecmath.DotProduct(samples, samples)
	r.Peak = vecmath.MaxAbs(samples)
	r.RMS = math.Sqrt(energy / float64(n))
	r.DC = vecmath.Sum(samples) / float64(n)
	r.PeakDBFS = core.LinearToDB(r.Peak)
	r.RMSDBFS = core.LinearToDB(r.RMS)

	if r.RMS > 0 {
		r.CrestFactor = r.Peak / r.RMS
	}

	for i := 1; i < n; i++ {
		if samples[i-1]*samples[i] < 0 {
			r.ZeroCrossings++
		}
	}

	power, err := spectrum(samples)
	if err != nil {
		return Report{}, err
	}

	r.FFTSize = 2 * (len(power) - 1)
	r.shape(power)

	return r, nil
}

// shape fills the spectral descriptors from a one-sided power spectrum.
func (r *Report) shape(power []float64) {
	bins := len(power)
	binHz := r.SampleRate / float64(r.FFTSize)

	mag := make([]float64, bins)
	for i, p := range power {
		mag[i] = math.Sqrt(p)
	}

	sumMag := vecmath.Sum(mag)
	if sumMag == 0 {
		return
	}

	var weighted float64
	for i, m := range mag {
		weighted += float64(i) * binHz * m
	}

	r.Centroid = weighted / sumMag

	total := vecmath.Sum(power)
	threshold := RolloffFraction * total
	cum := 0.0
	r.Rolloff = float64(bins-1) * binHz

	for i, p := range power {
		cum += p
		if cum >= threshold {
			r.Rolloff = float64(i) * binHz
			break
		}
	}

	r.Flatness = flatness(mag)
	r.DominantFrequency = dominant(mag) * binHz
}

// spectrum returns the one-sided power spectrum of the Hann-windowed,
// zero-padded signal.
func spectrum(samples []float64) ([]float64, error) {
	m := min(len(samples), MaxFFTSize)

	size := 2
	for size < m {
		size <<= 1
	}

	in := make([]complex128, size)
	for i := 0; i < m; i++ {
		in[i] = complex(samples[i]*hann(i, m), 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("profile: fft plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("profile: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return power, nil
}

// hann is the symmetric Hann window. A single-sample window is 1.
func hann(i, n int) float64 {
	if n < 2 {
		return 1
	}

	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

// flatness is the geometric over the arithmetic mean of the non-DC bins.
func flatness(mag []float64) float64 {
	if len(mag) < 2 {
		return 0
	}

	var sumLin, sumLog float64
	for _, v := range mag[1:] {
		if v <= 0 {
			return 0
		}

		sumLin += v
		sumLog += math.Log(v)
	}

	k := float64(len(mag) - 1)

	return math.Exp(sumLog/k) / (sumLin / k)
}

// dominant returns the fractional bin of the largest non-DC magnitude.
func dominant(mag []float64) float64 {
	if len(mag) < 2 {
		return 0
	}

	peak := 1
	for i := 2; i < len(mag); i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	if peak == 0 || peak >= len(mag)-1 || mag[peak] == 0 {
		return float64(peak)
	}

	a, b, c := mag[peak-1], mag[peak], mag[peak+1]

	denom := a - 2*b + c
	if denom == 0 {
		return float64(peak)
	}

	return float64(peak) + 0.5*(a-c)/denom
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "samples:      %d (%.3f s at %.0f Hz)\n", r.Samples, r.Duration, r.SampleRate)
	fmt.Fprintf(&b, "peak:         %.4f (%.1f dBFS)\n", r.Peak, r.PeakDBFS)
	fmt.Fprintf(&b, "rms:          %.4f (%.1f dBFS)\n", r.RMS, r.RMSDBFS)
	fmt.Fprintf(&b, "crest factor: %.2f\n", r.CrestFactor)
	fmt.Fprintf(&b, "dc:           %.5f\n", r.DC)
	fmt.Fprintf(&b, "crossings:    %d\n", r.ZeroCrossings)
	fmt.Fprintf(&b, "centroid:     %.0f Hz\n", r.Centroid)
	fmt.Fprintf(&b, "rolloff:      %.0f Hz\n", r.Rolloff)
	fmt.Fprintf(&b, "flatness:     %.3f\n", r.Flatness)
	fmt.Fprintf(&b, "dominant:     %.1f Hz\n", r.DominantFrequency)

	return b.String()
}
