// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form I processing for a single second-order
// section defined by [Coefficients]. Multiple sections can be cascaded via
// [Chain] for composite responses such as a sidechain conditioning EQ.
//
// This package provides the processing runtime only. Coefficient design
// (bandpass, highpass, lowpass, peaking EQ) lives in dsp/filter/design.
package biquad
