package amplitude

import (
	"math"
	"testing"
)

func TestPercentileNearestRank(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{10, 1},
		{15, 2},
		{50, 5},
		{75, 8},
		{90, 9},
		{99, 10},
		{100, 10},
	}

	for _, tt := range tests {
		if got := Percentile(sorted, tt.p); got != tt.want {
			t.Errorf("Percentile(%g) = %g, want %g", tt.p, got, tt.want)
		}
	}
}

func TestPercentileEmpty(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile(nil) = %g, want 0", got)
	}
}

func TestSortedDoesNotMutate(t *testing.T) {
	in := []float64{3, 1, 2}

	out := Sorted(in)
	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("Sorted = %v", out)
	}

	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("input mutated: %v", in)
	}
}

func TestSummarize(t *testing.T) {
	// Square wave at amplitude 0.5: peak = RMS = 0.5, crest = 1.
	values := []float64{0.5, -0.5, 0.5, -0.5}

	s := Summarize(values)

	if s.Peak != 0.5 {
		t.Errorf("Peak = %g, want 0.5", s.Peak)
	}

	if math.Abs(s.RMS-0.5) > 1e-12 {
		t.Errorf("RMS = %g, want 0.5", s.RMS)
	}

	if math.Abs(s.Crest-1) > 1e-12 {
		t.Errorf("Crest = %g, want 1", s.Crest)
	}

	if math.Abs(s.PeakDB-(-6.0206)) > 1e-3 {
		t.Errorf("PeakDB = %g, want about -6.02", s.PeakDB)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	if !math.IsInf(s.PeakDB, -1) || !math.IsInf(s.RMSDB, -1) {
		t.Errorf("empty summary dB fields = %g, %g, want -Inf", s.PeakDB, s.RMSDB)
	}
}
