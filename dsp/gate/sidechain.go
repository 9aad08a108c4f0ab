package gate

import (
	"github.com/cwbudde/algo-drumgate/drum"
	"github.com/cwbudde/algo-drumgate/dsp/filter/biquad"
	"github.com/cwbudde/algo-drumgate/dsp/filter/design"
)

// BuildSidechainEQ constructs the detection conditioning chain for a profile:
// a high-pass stage (if configured), a low-pass stage (if configured), one
// peaking stage per emphasis peak, then one per bleed cut, in that order.
//
// Any stage that cannot be designed at the given sample rate is omitted; the
// chain degrades gracefully and never errors. A nil profile yields an empty
// (identity) chain.
func BuildSidechainEQ(p *drum.Profile, sampleRate float64) *biquad.Chain {
	chain := biquad.NewChain(nil)
	if p == nil {
		return chain
	}

	if p.SidechainHPHz > 0 {
		if coeffs, ok := design.Highpass(p.SidechainHPHz, 0, sampleRate); ok {
			chain.Append(coeffs)
		}
	}

	if p.SidechainLPHz > 0 {
		if coeffs, ok := design.Lowpass(p.SidechainLPHz, 0, sampleRate); ok {
			chain.Append(coeffs)
		}
	}

	for _, pk := range p.EmphasisPeaks {
		if coeffs, ok := design.Peak(pk.Freq, pk.GainDB, pk.Q, sampleRate); ok {
			chain.Append(coeffs)
		}
	}

	for _, cut := range p.BleedCuts {
		if coeffs, ok := design.Peak(cut.Freq, cut.GainDB, cut.Q, sampleRate); ok {
			chain.Append(coeffs)
		}
	}

	return chain
}
