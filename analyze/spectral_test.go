package analyze

import (
	"testing"

	"github.com/cwbudde/algo-drumgate/drum"
)

func TestSnapshotFFTInvalidInput(t *testing.T) {
	profile := drum.ProfileFor(drum.Kick)

	if _, ok := SnapshotFFT(nil, profile, 44100); ok {
		t.Error("empty input accepted")
	}

	if _, ok := SnapshotFFT([]float64{0.5}, profile, 44100); ok {
		t.Error("single sample accepted")
	}

	if _, ok := SnapshotFFT(sineWave(70, 44100, 1024), profile, -1); ok {
		t.Error("negative sample rate accepted")
	}

	// No hi-hat focus band has a representable bin at 8 kHz.
	if _, ok := SnapshotFFT(sineWave(440, 8000, 1024), drum.ProfileFor(drum.HiHat), 8000); ok {
		t.Error("profile without focus bins accepted")
	}
}

func TestSnapshotFFTFocusDiscrimination(t *testing.T) {
	const sampleRate = 44100

	profile := drum.ProfileFor(drum.Kick)

	inBand, ok := SnapshotFFT(sineWave(70, sampleRate, 4096), profile, sampleRate)
	if !ok {
		t.Fatal("in-band snapshot failed")
	}

	if inBand.FocusRMS <= inBand.OffbandRMS {
		t.Errorf("70 Hz tone: FocusRMS %g <= OffbandRMS %g",
			inBand.FocusRMS, inBand.OffbandRMS)
	}

	outBand, ok := SnapshotFFT(sineWave(600, sampleRate, 4096), profile, sampleRate)
	if !ok {
		t.Fatal("out-of-band snapshot failed")
	}

	if outBand.OffbandRMS <= outBand.FocusRMS {
		t.Errorf("600 Hz tone: OffbandRMS %g <= FocusRMS %g",
			outBand.OffbandRMS, outBand.FocusRMS)
	}
}

func TestSnapshotFFTAgreesWithFilterPath(t *testing.T) {
	const sampleRate = 44100

	profile := drum.ProfileFor(drum.Snare)

	for _, tone := range []struct {
		freq    float64
		inFocus bool
	}{
		{250, true},
		{3000, true},
		{800, false},
	} {
		samples := sineWave(tone.freq, sampleRate, 8192)

		filt, ok := Snapshot(samples, profile, sampleRate)
		if !ok {
			t.Fatalf("%g Hz: filter snapshot failed", tone.freq)
		}

		fft, ok := SnapshotFFT(samples, profile, sampleRate)
		if !ok {
			t.Fatalf("%g Hz: fft snapshot failed", tone.freq)
		}

		if got := filt.FocusRMS > filt.OffbandRMS; got != tone.inFocus {
			t.Errorf("%g Hz: filter path focus-dominant=%v, want %v",
				tone.freq, got, tone.inFocus)
		}

		if got := fft.FocusRMS > fft.OffbandRMS; got != tone.inFocus {
			t.Errorf("%g Hz: fft path focus-dominant=%v, want %v",
				tone.freq, got, tone.inFocus)
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {1000, 1024}, {4096, 4096}, {4097, 8192},
	}

	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
