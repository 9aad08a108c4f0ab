package signal

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	g := NewGenerator(48000)

	out, err := g.Sine(1000, 0.5, 480)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	if len(out) != 480 {
		t.Fatalf("got %d samples, want 480", len(out))
	}

	if out[0] != 0 {
		t.Errorf("first sample = %g, want 0", out[0])
	}

	// Quarter period of 1 kHz at 48 kHz is 12 samples.
	if math.Abs(out[12]-0.5) > 1e-9 {
		t.Errorf("quarter-period sample = %g, want 0.5", out[12])
	}

	for i, v := range out {
		if math.Abs(v) > 0.5+1e-12 {
			t.Fatalf("sample %d = %g exceeds amplitude", i, v)
		}
	}
}

func TestSineInvalidArgs(t *testing.T) {
	if _, err := NewGenerator(48000).Sine(1000, 1, 0); err == nil {
		t.Error("zero samples accepted")
	}

	if _, err := NewGenerator(0).Sine(1000, 1, 64); err == nil {
		t.Error("zero sample rate accepted")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a, err := NewGenerator(44100, WithSeed(7)).WhiteNoise(0.3, 256)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}

	b, _ := NewGenerator(44100, WithSeed(7)).WhiteNoise(0.3, 256)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs across runs with same seed", i)
		}

		if math.Abs(a[i]) > 0.3 {
			t.Fatalf("sample %d = %g exceeds amplitude", i, a[i])
		}
	}

	c, _ := NewGenerator(44100, WithSeed(8)).WhiteNoise(0.3, 256)

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}

	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestDecayingSine(t *testing.T) {
	g := NewGenerator(44100)

	out, err := g.DecayingSine(60, 0.9, 18, 44100)
	if err != nil {
		t.Fatalf("DecayingSine: %v", err)
	}

	var earlyPeak, latePeak float64

	for _, v := range out[:4410] {
		if a := math.Abs(v); a > earlyPeak {
			earlyPeak = a
		}
	}

	for _, v := range out[22050:] {
		if a := math.Abs(v); a > latePeak {
			latePeak = a
		}
	}

	if latePeak >= earlyPeak {
		t.Errorf("no decay: early peak %g, late peak %g", earlyPeak, latePeak)
	}

	if _, err := g.DecayingSine(60, 0.9, -1, 64); err == nil {
		t.Error("negative decay accepted")
	}
}

func TestMixAt(t *testing.T) {
	dst := []float64{0, 0, 0, 0}

	MixAt(dst, []float64{1, 2, 3}, 2)

	want := []float64{0, 0, 1, 2}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %g, want %g", i, dst[i], want[i])
		}
	}

	MixAt(dst, []float64{5}, -1)
	MixAt(dst, []float64{5}, 10)

	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("out-of-range offset modified dst[%d]", i)
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{0.1, -0.4, 0.2}, 1.0)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if math.Abs(out[1]) != 1.0 {
		t.Errorf("peak = %g, want 1.0", math.Abs(out[1]))
	}

	zeros, err := Normalize([]float64{0, 0}, 1.0)
	if err != nil {
		t.Fatalf("Normalize zeros: %v", err)
	}

	for _, v := range zeros {
		if v != 0 {
			t.Error("silence gained amplitude")
		}
	}

	if _, err := Normalize(nil, 1.0); err == nil {
		t.Error("empty input accepted")
	}
}
