package analyze

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-drumgate/drum"
	"github.com/cwbudde/algo-drumgate/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Bins below this frequency are treated as DC/rumble and excluded from the
// off-band tally.
const minAnalysisFreqHz = 20.0

// SnapshotFFT computes a [SpectralSnapshot] from a single power spectrum
// instead of running the detection filters sample by sample. A Hann window is
// applied, the spectrum is integrated bin by bin, and bins falling inside a
// profile's focus bands contribute (weighted) to the focus levels while the
// remainder up to 0.48 * sampleRate counts as off-band.
//
// The filter-based [Snapshot] and this one agree on which side of the
// focus/off-band split dominates; absolute levels differ because the FFT
// path has no filter skirts. Use whichever input is cheaper to produce.
func SnapshotFFT(samples []float64, profile *drum.Profile, sampleRate float64) (SpectralSnapshot, bool) {
	if len(samples) < 2 || sampleRate <= 0 {
		return SpectralSnapshot{}, false
	}

	if profile == nil {
		profile = drum.ProfileFor(drum.Class{})
	}

	fftSize := nextPowerOf2(len(samples))

	windowed := make([]float64, len(samples))
	copy(windowed, samples)
	window.Apply(windowed, window.Hann(len(samples)))

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return SpectralSnapshot{}, false
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return SpectralSnapshot{}, false
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	binHz := sampleRate / float64(fftSize)
	maxFreq := 0.48 * sampleRate

	var (
		focusSum, offSum, broadSum float64
		focusPeak, broadPeak       float64
		focusBins, offBins         int
	)

	for i := 1; i < bins; i++ {
		freq := float64(i) * binHz
		if freq < minAnalysisFreqHz || freq > maxFreq {
			continue
		}

		p := power[i]
		broadSum += p

		if a := math.Sqrt(p); a > broadPeak {
			broadPeak = a
		}

		if w, ok := focusBandWeight(profile, freq); ok {
			wp := p * w * w
			focusSum += wp
			focusBins++

			if a := math.Sqrt(wp); a > focusPeak {
				focusPeak = a
			}

			continue
		}

		offSum += p
		offBins++
	}

	if focusBins == 0 {
		return SpectralSnapshot{}, false
	}

	snap := SpectralSnapshot{
		FocusRMS:      math.Sqrt(focusSum / float64(focusBins)),
		FocusPeak:     focusPeak,
		BroadbandRMS:  math.Sqrt(broadSum / float64(focusBins+offBins)),
		BroadbandPeak: broadPeak,
	}

	if offBins > 0 {
		snap.OffbandRMS = math.Sqrt(offSum / float64(offBins))
	}

	return snap, true
}

// focusBandWeight returns the weight of the first focus band containing freq.
func focusBandWeight(p *drum.Profile, freq float64) (float64, bool) {
	for _, b := range p.FocusBands {
		if freq >= b.Low && freq <= b.High {
			return b.Weight, true
		}
	}

	return 0, false
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
