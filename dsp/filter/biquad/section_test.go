package biquad

import (
	"math"
	"testing"
)

// testCoeffs is a stable lowpass-like section used across tests.
var testCoeffs = Coefficients{
	B0: 0.2, B1: 0.4, B2: 0.2,
	A1: -0.3, A2: 0.1,
}

func TestSectionZeroInput(t *testing.T) {
	s := NewSection(testCoeffs)

	for i := 0; i < 1000; i++ {
		if y := s.ProcessSample(0); y != 0 {
			t.Fatalf("sample %d: zero input produced %g", i, y)
		}
	}
}

func TestSectionProcessBlockMatchesProcessSample(t *testing.T) {
	a := NewSection(testCoeffs)
	b := NewSection(testCoeffs)

	input := make([]float64, 256)
	for i := range input {
		input[i] = math.Sin(2 * math.Pi * float64(i) / 32)
	}

	block := make([]float64, len(input))
	copy(block, input)
	b.ProcessBlock(block)

	for i, x := range input {
		want := a.ProcessSample(x)
		if block[i] != want {
			t.Fatalf("sample %d: block %g, per-sample %g", i, block[i], want)
		}
	}
}

func TestSectionStateRoundTrip(t *testing.T) {
	s := NewSection(testCoeffs)
	s.ProcessSample(1)
	s.ProcessSample(-0.5)

	saved := s.State()
	want := s.ProcessSample(0.25)

	s.SetState(saved)
	if got := s.ProcessSample(0.25); got != want {
		t.Errorf("after state restore: %g, want %g", got, want)
	}

	s.Reset()
	if got := s.State(); got != [4]float64{} {
		t.Errorf("state after Reset = %v, want zeros", got)
	}
}

func TestSectionImpulseDecays(t *testing.T) {
	s := NewSection(testCoeffs)

	y := s.ProcessSample(1)
	if y != testCoeffs.B0 {
		t.Fatalf("impulse response[0] = %g, want %g", y, testCoeffs.B0)
	}

	// Stable filter: tail must decay toward zero.
	for i := 0; i < 10000; i++ {
		y = s.ProcessSample(0)
	}

	if math.Abs(y) > 1e-12 {
		t.Errorf("impulse tail did not decay: %g", y)
	}
}

func TestChainEmptyIsIdentity(t *testing.T) {
	c := NewChain(nil)

	for _, x := range []float64{0, 1, -0.5, 0.25} {
		if y := c.ProcessSample(x); y != x {
			t.Errorf("empty chain: ProcessSample(%g) = %g", x, y)
		}
	}
}

func TestChainCascadeOrder(t *testing.T) {
	other := Coefficients{B0: 0.5, B1: 0.1, B2: 0, A1: -0.2, A2: 0}

	chain := NewChain([]Coefficients{testCoeffs, other})

	s1 := NewSection(testCoeffs)
	s2 := NewSection(other)

	for i := 0; i < 64; i++ {
		x := math.Sin(2 * math.Pi * float64(i) / 17)

		want := s2.ProcessSample(s1.ProcessSample(x))
		if got := chain.ProcessSample(x); got != want {
			t.Fatalf("sample %d: chain %g, manual cascade %g", i, got, want)
		}
	}
}
