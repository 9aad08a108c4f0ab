// Package window provides analysis window functions for spectral estimation.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Hann returns the symmetric Hann window of the given length. A length of 1
// yields the single coefficient 1; non-positive lengths yield nil.
func Hann(size int) []float64 {
	if size <= 0 {
		return nil
	}

	w := make([]float64, size)
	if size == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
	}

	return w
}

// HannPeriodic returns the periodic (FFT framing) Hann window: the symmetric
// window of length size+1 with the final coefficient dropped.
func HannPeriodic(size int) []float64 {
	if size <= 0 {
		return nil
	}

	w := make([]float64, size)
	if size == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size)))
	}

	return w
}

// Apply multiplies data in place by the window coefficients. Lengths must
// match.
func Apply(data, coeffs []float64) {
	vecmath.MulBlockInPlace(data, coeffs)
}

// CoherentGain returns the mean of the window coefficients, the factor by
// which the window scales a coherent (in-bin) tone.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	var sum float64
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}
