// Package amplitude provides order statistics and level summaries for
// amplitude sequences, shared by the offline analysis passes.
package amplitude

import (
	"math"
	"sort"
)

// Percentile returns the nearest-rank percentile p (0..100) of an ascending
// sorted slice. Returns 0 for an empty slice.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	if p <= 0 {
		return sorted[0]
	}

	if p >= 100 {
		return sorted[n-1]
	}

	rank := int(math.Ceil(p / 100 * float64(n)))
	if rank < 1 {
		rank = 1
	}

	return sorted[rank-1]
}

// Sorted returns an ascending copy of values, leaving the input untouched.
func Sorted(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)

	return out
}

// Summary holds basic level statistics of an amplitude sequence.
type Summary struct {
	Peak    float64
	RMS     float64
	Crest   float64 // peak / RMS, linear
	PeakDB  float64
	RMSDB   float64
	CrestDB float64
}

// Summarize computes peak, RMS, and crest factor in a single pass.
// An empty input yields a zero Summary with -Inf dB fields.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{
			PeakDB:  math.Inf(-1),
			RMSDB:   math.Inf(-1),
			CrestDB: math.Inf(-1),
		}
	}

	var peak, sumSq float64

	for _, v := range values {
		if a := math.Abs(v); a > peak {
			peak = a
		}

		sumSq += v * v
	}

	s := Summary{
		Peak: peak,
		RMS:  math.Sqrt(sumSq / float64(len(values))),
	}

	if s.RMS > 0 {
		s.Crest = s.Peak / s.RMS
	}

	s.PeakDB = ampToDB(s.Peak)
	s.RMSDB = ampToDB(s.RMS)
	s.CrestDB = ampToDB(s.Crest)

	return s
}

func ampToDB(v float64) float64 {
	if v == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}
