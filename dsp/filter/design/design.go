// Package design provides RBJ cookbook biquad coefficient design.
//
// All designers are pure functions of (frequency parameters, sample rate) and
// report failure through their second return value instead of an error: a
// filter that cannot be designed simply is not built. Callers are expected to
// degrade gracefully by omitting the corresponding stage.
package design

import (
	"math"

	"github.com/cwbudde/algo-drumgate/dsp/core"
	"github.com/cwbudde/algo-drumgate/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// Bandpass edges above this fraction of the sample rate are rejected; it
// leaves headroom below Nyquist so the band's upper skirt stays meaningful.
const maxBandEdgeFraction = 0.48

const (
	minBandQ = 0.2
	maxBandQ = 8.0
)

// BandpassRange designs a constant-skirt-gain bandpass biquad covering the
// band [low, high] Hz. The center frequency is the geometric mean of the
// edges and the quality factor is derived from the bandwidth, clamped to
// [0.2, 8].
//
// Returns ok=false for a non-positive sample rate, a degenerate band, or an
// upper edge at or above 0.48 * sampleRate.
func BandpassRange(low, high, sampleRate float64) (biquad.Coefficients, bool) {
	if sampleRate <= 0 || high <= low || high >= maxBandEdgeFraction*sampleRate {
		return biquad.Coefficients{}, false
	}

	center := math.Sqrt(low * high)
	bandwidth := math.Max(high-low, 1)
	q := core.Clamp(center/bandwidth, minBandQ, maxBandQ)

	return Bandpass(center, q, sampleRate)
}

// Bandpass designs a constant-skirt-gain bandpass biquad (peak gain = Q)
// centered at freq (Hz).
func Bandpass(freq, q, sampleRate float64) (biquad.Coefficients, bool) {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}, false
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := sw / 2
	b1 := 0.0
	b2 := -sw / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q.
// A non-positive q falls back to Butterworth damping (1/sqrt(2)).
func Lowpass(freq, q, sampleRate float64) (biquad.Coefficients, bool) {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}, false
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Highpass designs a highpass biquad at freq (Hz) with quality factor q.
// A non-positive q falls back to Butterworth damping (1/sqrt(2)).
func Highpass(freq, q, sampleRate float64) (biquad.Coefficients, bool) {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}, false
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Peak designs a peaking-EQ biquad with gain in dB using the standard RBJ
// formula with linear gain A = 10^(gainDB/40).
func Peak(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, bool) {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}, false
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) (biquad.Coefficients, bool) {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}, false
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}, true
}
