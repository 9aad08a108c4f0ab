package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form I:
//
//	y = B0*x + B1*x1 + B2*x2 - A1*y1 - A2*y2
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// IsZero reports whether all coefficients are zero, the value produced by
// failed filter design.
func (c Coefficients) IsZero() bool {
	return c.B0 == 0 && c.B1 == 0 && c.B2 == 0 && c.A1 == 0 && c.A2 == 0
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form I processing: the state scalars are the previous
// two input and output samples. A Section is exclusively owned by whichever
// component created it; state must never be shared between filters.
type Section struct {
	Coefficients

	x1, x2 float64
	y1, y2 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output. Zero-alloc.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.x1 + s.B2*s.x2 - s.A1*s.y1 - s.A2*s.y2

	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	x1, x2 := s.x1, s.x2
	y1, y2 := s.y1, s.y2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s.x1, s.x2 = x1, x2
	s.y1, s.y2 = y1, y2
}

// Reset clears the input/output history to zero.
func (s *Section) Reset() {
	s.x1 = 0
	s.x2 = 0
	s.y1 = 0
	s.y2 = 0
}

// State returns the current filter history [x1, x2, y1, y2].
func (s *Section) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved filter history.
func (s *Section) SetState(state [4]float64) {
	s.x1 = state[0]
	s.x2 = state[1]
	s.y1 = state[2]
	s.y2 = state[3]
}
