package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// Sections are stored inline by value so each filter's history lives next to
// its coefficients and is never aliased by another chain.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from zero or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// Append adds one section to the end of the cascade.
// Must not be called while the chain is processing samples.
func (c *Chain) Append(coeffs Coefficients) {
	c.sections = append(c.sections, Section{Coefficients: coeffs})
}

// ProcessSample cascades input through all sections in order. An empty chain
// is the identity. Zero-alloc.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Section returns a pointer to the i-th section for inspection.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}
