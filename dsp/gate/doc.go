// Package gate implements a sidechain-triggered noise gate for percussion.
//
// The [Engine] consumes interleaved-per-channel sample blocks and attenuates
// inter-hit bleed while preserving transients. Detection is driven by a
// per-class [drum.Profile]: a weighted bandpass [Detector] reports the most
// excited focus band while a sidechain EQ chain conditions the signal feeding
// it. The gate itself is an envelope follower with hysteresis, transient
// hold, and a soft-knee closing curve.
//
// The per-sample processing path allocates nothing, takes no locks, and never
// fails; all fallible work happens in [Engine.Reconfigure], which publishes a
// new configuration snapshot atomically so the audio goroutine never observes
// a torn update.
package gate
