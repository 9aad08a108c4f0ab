package analyze

import (
	"math"

	"github.com/cwbudde/algo-drumgate/drum"
	"github.com/cwbudde/algo-drumgate/stats/amplitude"
)

// Analyzer gating constants. A clip must show a clear transient/sustain
// contrast in at least one of three amplitude lifts, or a strong focus-band
// dominance in its spectral snapshot, before any recommendation is made.
const (
	minAnalysisSamples = 12
	minAnalysisPeak    = 0.01

	minPeakLiftDB    = 6.0
	minTailLiftDB    = 4.0
	minFloorLiftDB   = 8.0
	minFocusToOffDB  = 4.0
	defaultCrestDB   = 18.0
	thresholdRankPct = 82.0

	minReleaseSeconds = 0.07
	maxReleaseSeconds = 0.35
)

// Suggestion is the analyzer's recommended starting point for gate settings.
// HasRelease is false when the amplitude distribution gave no usable release
// evidence; callers should keep their manual default in that case.
type Suggestion struct {
	ThresholdDB float64
	Release     float64
	HasRelease  bool
}

// Suggest proposes a starting threshold (and, when the evidence supports it,
// a release time) from a waveform's windowed amplitude sequence. amps is one
// peak value per analysis window of the decoded waveform; profile biases the
// threshold per percussion class and snap supplies spectral context. Both
// profile and snap may be nil.
//
// Returns ok=false when the input is too short, too quiet, or lacks the
// amplitude separation that makes a gate recommendation reliable.
func Suggest(amps []float64, profile *drum.Profile, snap *SpectralSnapshot) (Suggestion, bool) {
	var peak float64

	for _, a := range amps {
		if a := math.Abs(a); a > peak && !math.IsInf(a, 0) {
			peak = a
		}
	}

	if math.IsNaN(peak) || peak < minAnalysisPeak {
		return Suggestion{}, false
	}

	values := make([]float64, 0, len(amps))

	for _, a := range amps {
		v := a / peak
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			continue
		}

		values = append(values, v)
	}

	if len(values) < minAnalysisSamples {
		return Suggestion{}, false
	}

	sorted := amplitude.Sorted(values)

	p10 := amplitude.Percentile(sorted, 10)
	p15 := amplitude.Percentile(sorted, 15)
	p50 := amplitude.Percentile(sorted, 50)
	p75 := amplitude.Percentile(sorted, 75)
	p99 := amplitude.Percentile(sorted, 99)
	maxAmp := sorted[len(sorted)-1]

	body := math.Max(p50, 0.9*p75)
	peakLiftDB := ratioDB(maxAmp, body)
	tailLiftDB := ratioDB(p99, p75)
	floorLiftDB := ratioDB(p75, p10)

	separated := peakLiftDB >= minPeakLiftDB ||
		tailLiftDB >= minTailLiftDB ||
		floorLiftDB >= minFloorLiftDB

	if !separated {
		// No amplitude contrast; fall back to spectral evidence.
		if snap == nil || ratioDB(snap.FocusRMS, snap.OffbandRMS) < minFocusToOffDB {
			return Suggestion{}, false
		}
	}

	crestDB := defaultCrestDB
	if snap != nil && snap.FocusRMS > 0 && snap.FocusPeak > 0 {
		crestDB = ratioDB(snap.FocusPeak, snap.FocusRMS)
	}

	// Peakier material earns a more permissive floor: its transients already
	// stand far above its sustain.
	var mixFloorDB float64

	switch {
	case crestDB >= 24:
		mixFloorDB = -42
	case crestDB >= 20:
		mixFloorDB = -36
	case crestDB >= 16:
		mixFloorDB = -32
	default:
		mixFloorDB = -28
	}

	biasDB := 0.0
	if profile != nil {
		biasDB = profile.ThresholdBiasDB
	}

	thresholdDB := math.Min(0, ampDB(amplitude.Percentile(sorted, thresholdRankPct))+biasDB)

	s := Suggestion{ThresholdDB: math.Max(mixFloorDB, thresholdDB)}

	// Release evidence: the spread between the body and the quiet tail of
	// the distribution. Too narrow a spread is ambiguous.
	switch spreadDB := ampDB(p75) - ampDB(p15); {
	case spreadDB < 3:
		// No recommendation.
	case spreadDB < 6:
		s.Release = 0.18
		s.HasRelease = true
	case spreadDB < 10:
		s.Release = 0.14
		s.HasRelease = true
	default:
		s.Release = 0.10
		s.HasRelease = true
	}

	if s.HasRelease {
		s.Release = math.Min(math.Max(s.Release, minReleaseSeconds), maxReleaseSeconds)
	}

	return s, true
}

func ampDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

func ratioDB(num, den float64) float64 {
	if num <= 0 {
		return math.Inf(-1)
	}

	if den <= 0 {
		return math.Inf(1)
	}

	return 20 * math.Log10(num/den)
}
