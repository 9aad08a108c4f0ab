package design

import (
	"math"
	"testing"
)

func TestBandpassRangeValidity(t *testing.T) {
	tests := []struct {
		name             string
		low, high, rate  float64
		wantOK           bool
	}{
		{"kick band", 45, 110, 44100, true},
		{"hihat band", 5000, 10000, 44100, true},
		{"narrow band", 900, 1000, 48000, true},
		{"degenerate equal", 500, 500, 44100, false},
		{"inverted", 1000, 500, 44100, false},
		{"above 0.48 fs", 5000, 22000, 44100, false},
		{"zero sample rate", 100, 200, 0, false},
		{"negative sample rate", 100, 200, -44100, false},
		{"band valid at low rate", 45, 110, 8000, true},
		{"band too high for rate", 5000, 10000, 16000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := BandpassRange(tt.low, tt.high, tt.rate)
			if ok != tt.wantOK {
				t.Errorf("BandpassRange(%g, %g, %g) ok = %v, want %v",
					tt.low, tt.high, tt.rate, ok, tt.wantOK)
			}
		})
	}
}

func TestBandpassRangeEdgesAttenuated(t *testing.T) {
	const sampleRate = 44100.0

	bands := [][2]float64{
		{45, 110},
		{150, 400},
		{1800, 5200},
		{5000, 10000},
	}

	for _, band := range bands {
		low, high := band[0], band[1]

		c, ok := BandpassRange(low, high, sampleRate)
		if !ok {
			t.Fatalf("BandpassRange(%g, %g) failed", low, high)
		}

		center := math.Sqrt(low * high)
		centerDB := c.MagnitudeDB(center, sampleRate)

		if lowDB := c.MagnitudeDB(low, sampleRate); lowDB >= centerDB {
			t.Errorf("band [%g, %g]: low edge %.2f dB not below center %.2f dB",
				low, high, lowDB, centerDB)
		}

		if highDB := c.MagnitudeDB(high, sampleRate); highDB >= centerDB {
			t.Errorf("band [%g, %g]: high edge %.2f dB not below center %.2f dB",
				low, high, highDB, centerDB)
		}
	}
}

func TestLowpassHighpassCutoff(t *testing.T) {
	const (
		sampleRate = 48000.0
		cutoff     = 1000.0
	)

	lp, ok := Lowpass(cutoff, defaultQ, sampleRate)
	if !ok {
		t.Fatal("Lowpass failed")
	}

	hp, ok := Highpass(cutoff, defaultQ, sampleRate)
	if !ok {
		t.Fatal("Highpass failed")
	}

	// Butterworth response: -3 dB at cutoff.
	if got := lp.MagnitudeDB(cutoff, sampleRate); math.Abs(got-(-3.01)) > 0.1 {
		t.Errorf("lowpass at cutoff = %.2f dB, want -3.01 dB", got)
	}

	if got := hp.MagnitudeDB(cutoff, sampleRate); math.Abs(got-(-3.01)) > 0.1 {
		t.Errorf("highpass at cutoff = %.2f dB, want -3.01 dB", got)
	}

	// Stopband separation.
	if got := lp.MagnitudeDB(10000, sampleRate); got > -20 {
		t.Errorf("lowpass at 10 kHz = %.2f dB, want below -20 dB", got)
	}

	if got := hp.MagnitudeDB(100, sampleRate); got > -20 {
		t.Errorf("highpass at 100 Hz = %.2f dB, want below -20 dB", got)
	}
}

func TestPeakGainAtCenter(t *testing.T) {
	const sampleRate = 44100.0

	for _, gainDB := range []float64{-9, -4.5, 2.5, 6} {
		c, ok := Peak(2500, gainDB, 1.1, sampleRate)
		if !ok {
			t.Fatalf("Peak(%g dB) failed", gainDB)
		}

		if got := c.MagnitudeDB(2500, sampleRate); math.Abs(got-gainDB) > 0.1 {
			t.Errorf("peak gain at center = %.2f dB, want %.2f dB", got, gainDB)
		}
	}
}

func TestDesignersRejectInvalidFrequencies(t *testing.T) {
	const sampleRate = 44100.0

	for _, freq := range []float64{0, -100, 22050, 30000, math.NaN(), math.Inf(1)} {
		if _, ok := Lowpass(freq, defaultQ, sampleRate); ok {
			t.Errorf("Lowpass(%g) unexpectedly ok", freq)
		}

		if _, ok := Highpass(freq, defaultQ, sampleRate); ok {
			t.Errorf("Highpass(%g) unexpectedly ok", freq)
		}

		if _, ok := Peak(freq, 3, 1, sampleRate); ok {
			t.Errorf("Peak(%g) unexpectedly ok", freq)
		}
	}
}
