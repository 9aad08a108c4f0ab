// Package analyze implements the offline auto-suggestion pass: given a
// decoded waveform's windowed amplitudes and an optional spectral snapshot,
// it proposes starting threshold and release values for the gate.
//
// Everything here is pure and non-real-time. Functions own no shared state
// and may run concurrently for different inputs; their results are advisory
// configuration for gate.Engine.Reconfigure, never applied directly.
package analyze
