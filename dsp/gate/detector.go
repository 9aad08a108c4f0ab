package gate

import (
	"math"

	"github.com/cwbudde/algo-drumgate/drum"
	"github.com/cwbudde/algo-drumgate/dsp/filter/biquad"
	"github.com/cwbudde/algo-drumgate/dsp/filter/design"
)

// bandFilter pairs one bandpass section with its detection weight. Sections
// are stored inline so each filter's history is exclusively owned by the
// detector and laid out next to its coefficients.
type bandFilter struct {
	section biquad.Section
	weight  float64
}

// Detector measures per-sample focus energy across a profile's detection
// bands. Each retained band contributes |bandpass output| * weight; the
// detector reports the maximum across bands rather than the sum, so a
// broadband out-of-focus transient cannot accumulate across irrelevant bands
// into a false detection.
type Detector struct {
	bands []bandFilter
}

// NewDetector builds one bandpass filter per frequency band. Bands whose
// filter cannot be designed at the given sample rate are silently dropped;
// construction fails only if every band is dropped.
func NewDetector(bands []drum.FrequencyBand, sampleRate float64) (*Detector, bool) {
	d := &Detector{bands: make([]bandFilter, 0, len(bands))}

	for _, b := range bands {
		coeffs, ok := design.BandpassRange(b.Low, b.High, sampleRate)
		if !ok {
			continue
		}

		d.bands = append(d.bands, bandFilter{
			section: biquad.Section{Coefficients: coeffs},
			weight:  b.Weight,
		})
	}

	if len(d.bands) == 0 {
		return nil, false
	}

	return d, true
}

// ProcessSample runs one sample through every retained band filter and
// returns the weighted magnitude of the single most excited band. Zero-alloc.
func (d *Detector) ProcessSample(x float64) float64 {
	var peak float64

	for i := range d.bands {
		v := math.Abs(d.bands[i].section.ProcessSample(x)) * d.bands[i].weight
		if v > peak {
			peak = v
		}
	}

	return peak
}

// NumBands returns the number of bands that survived construction.
func (d *Detector) NumBands() int {
	return len(d.bands)
}

// Reset clears all band filter states.
func (d *Detector) Reset() {
	for i := range d.bands {
		d.bands[i].section.Reset()
	}
}
