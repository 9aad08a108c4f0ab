package analyze

import (
	"math"

	"github.com/cwbudde/algo-drumgate/drum"
	"github.com/cwbudde/algo-drumgate/dsp/gate"
)

// SpectralSnapshot summarizes how a clip's energy splits between a profile's
// focus bands and everything else, as seen through the profile's own
// detection chain.
type SpectralSnapshot struct {
	FocusRMS      float64
	FocusPeak     float64
	OffbandRMS    float64
	BroadbandRMS  float64
	BroadbandPeak float64
}

// Snapshot runs a profile's sidechain EQ and band detector over a decoded,
// mono sample sequence and accumulates focus/off-band/broadband levels. The
// off-band level of each sample is the conditioned broadband magnitude with
// the focus contribution removed.
//
// A nil profile falls back to the generic tuning. Returns ok=false for empty
// input, an invalid sample rate, or a profile whose detector cannot be built
// at this rate.
func Snapshot(samples []float64, profile *drum.Profile, sampleRate float64) (SpectralSnapshot, bool) {
	if len(samples) == 0 || sampleRate <= 0 {
		return SpectralSnapshot{}, false
	}

	if profile == nil {
		profile = drum.ProfileFor(drum.Class{})
	}

	detector, ok := gate.NewDetector(profile.FocusBands, sampleRate)
	if !ok {
		return SpectralSnapshot{}, false
	}

	chain := gate.BuildSidechainEQ(profile, sampleRate)

	var (
		focusSq, offSq, broadSq float64
		focusPeak, broadPeak    float64
	)

	for _, x := range samples {
		conditioned := chain.ProcessSample(x)
		broad := math.Abs(conditioned)
		focus := detector.ProcessSample(conditioned)
		off := math.Max(broad-focus, 0)

		focusSq += focus * focus
		offSq += off * off
		broadSq += broad * broad

		if focus > focusPeak {
			focusPeak = focus
		}

		if broad > broadPeak {
			broadPeak = broad
		}
	}

	n := float64(len(samples))

	return SpectralSnapshot{
		FocusRMS:      math.Sqrt(focusSq / n),
		FocusPeak:     focusPeak,
		OffbandRMS:    math.Sqrt(offSq / n),
		BroadbandRMS:  math.Sqrt(broadSq / n),
		BroadbandPeak: broadPeak,
	}, true
}

// WindowPeaks reduces a decoded waveform to one peak amplitude per analysis
// window, the input format expected by [Suggest]. A non-positive windowSize
// defaults to 1024 samples. The final partial window is included.
func WindowPeaks(samples []float64, windowSize int) []float64 {
	if len(samples) == 0 {
		return nil
	}

	if windowSize <= 0 {
		windowSize = 1024
	}

	out := make([]float64, 0, (len(samples)+windowSize-1)/windowSize)

	for start := 0; start < len(samples); start += windowSize {
		end := start + windowSize
		if end > len(samples) {
			end = len(samples)
		}

		var peak float64

		for _, v := range samples[start:end] {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}

		out = append(out, peak)
	}

	return out
}
