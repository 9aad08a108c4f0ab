package drum

// FrequencyBand describes one detection passband and its relative importance
// in the focus detector.
type FrequencyBand struct {
	Low    float64 // lower edge in Hz
	High   float64 // upper edge in Hz
	Weight float64 // relative importance, linear
}

// EQPoint describes one peaking-EQ stage of the sidechain conditioning chain.
type EQPoint struct {
	Freq   float64 // center frequency in Hz
	GainDB float64 // boost (positive) or cut (negative) in dB
	Q      float64 // quality factor
}

// Profile is the immutable per-class gate tuning. It parameterizes the focus
// detector bands, the sidechain corrective EQ, and the shape biases of the
// gate itself. Profiles are hand-tuned empirical constants; they are never
// mutated at runtime.
type Profile struct {
	// Focus bands drive the band detector. A band whose filter cannot be
	// designed at the active sample rate is dropped at construction time.
	FocusBands []FrequencyBand

	// FloorDB is the nominal closed-gate leak level. The engine pulls it
	// toward -60 dB as the user threshold approaches 0 dBFS.
	FloorDB float64

	// HoldMin and HoldMax bound the gate hold duration in seconds.
	HoldMin float64
	HoldMax float64

	// Hysteresis is the envelope-to-threshold ratio below which the gate
	// begins closing. Always strictly below 1 so a dead band separates
	// fully-open from closing and prevents chatter.
	Hysteresis float64

	// ThresholdBiasDB shifts auto-suggested thresholds for this class.
	ThresholdBiasDB float64

	// FocusWeight scales the band detector output against the broadband
	// level.
	FocusWeight float64

	// Curve is the exponent of the soft-knee closing ramp.
	Curve float64

	// SidechainHPHz and SidechainLPHz are optional cutoffs for the sidechain
	// conditioning chain; zero means no stage.
	SidechainHPHz float64
	SidechainLPHz float64

	// EmphasisPeaks boost the class's signature regions in the sidechain;
	// BleedCuts notch out regions dominated by neighboring instruments.
	EmphasisPeaks []EQPoint
	BleedCuts     []EQPoint
}

var kickProfile = Profile{
	FocusBands: []FrequencyBand{
		{Low: 45, High: 110, Weight: 1.0},
		{Low: 1800, High: 5200, Weight: 0.6},
	},
	FloorDB:         -18,
	HoldMin:         0.07,
	HoldMax:         0.14,
	Hysteresis:      0.55,
	ThresholdBiasDB: -2,
	FocusWeight:     1.25,
	Curve:           1.5,
	SidechainHPHz:   30,
	SidechainLPHz:   9000,
	EmphasisPeaks: []EQPoint{
		{Freq: 60, GainDB: 4, Q: 1.0},
		{Freq: 3500, GainDB: 3, Q: 1.2},
	},
	BleedCuts: []EQPoint{
		{Freq: 250, GainDB: -4, Q: 1.4},
		{Freq: 900, GainDB: -3, Q: 1.8},
	},
}

var snareProfile = Profile{
	FocusBands: []FrequencyBand{
		{Low: 150, High: 400, Weight: 1.0},
		{Low: 2000, High: 6000, Weight: 0.8},
	},
	FloorDB:         -16,
	HoldMin:         0.06,
	HoldMax:         0.12,
	Hysteresis:      0.6,
	ThresholdBiasDB: 0,
	FocusWeight:     1.2,
	Curve:           1.45,
	SidechainHPHz:   90,
	SidechainLPHz:   12000,
	EmphasisPeaks: []EQPoint{
		{Freq: 200, GainDB: 3, Q: 1.1},
		{Freq: 4500, GainDB: 3, Q: 1.3},
	},
	BleedCuts: []EQPoint{
		{Freq: 70, GainDB: -5, Q: 1.0},
		{Freq: 1000, GainDB: -2, Q: 1.6},
	},
}

var tomsProfile = Profile{
	FocusBands: []FrequencyBand{
		{Low: 80, High: 240, Weight: 1.0},
		{Low: 2500, High: 6000, Weight: 0.5},
	},
	FloorDB:         -17,
	HoldMin:         0.08,
	HoldMax:         0.16,
	Hysteresis:      0.55,
	ThresholdBiasDB: -1,
	FocusWeight:     1.2,
	Curve:           1.4,
	SidechainHPHz:   50,
	SidechainLPHz:   10000,
	EmphasisPeaks: []EQPoint{
		{Freq: 120, GainDB: 4, Q: 1.0},
	},
	BleedCuts: []EQPoint{
		{Freq: 400, GainDB: -3, Q: 1.5},
		{Freq: 8000, GainDB: -4, Q: 1.2},
	},
}

var hihatProfile = Profile{
	FocusBands: []FrequencyBand{
		{Low: 5000, High: 10000, Weight: 1.0},
		{Low: 10000, High: 16000, Weight: 0.6},
	},
	FloorDB:         -14,
	HoldMin:         0.03,
	HoldMax:         0.07,
	Hysteresis:      0.65,
	ThresholdBiasDB: 2,
	FocusWeight:     1.1,
	Curve:           1.35,
	SidechainHPHz:   2500,
	EmphasisPeaks: []EQPoint{
		{Freq: 8000, GainDB: 3, Q: 1.0},
	},
	BleedCuts: []EQPoint{
		{Freq: 200, GainDB: -6, Q: 0.8},
		{Freq: 900, GainDB: -4, Q: 1.2},
	},
}

// percussionProfile covers both tambourine and claps: short, bright hits
// whose energy and hold behavior are close enough to share one tuning.
var percussionProfile = Profile{
	FocusBands: []FrequencyBand{
		{Low: 3000, High: 7000, Weight: 0.9},
		{Low: 6000, High: 12000, Weight: 1.0},
	},
	FloorDB:         -15,
	HoldMin:         0.04,
	HoldMax:         0.09,
	Hysteresis:      0.6,
	ThresholdBiasDB: 1,
	FocusWeight:     1.1,
	Curve:           1.4,
	SidechainHPHz:   1500,
	EmphasisPeaks: []EQPoint{
		{Freq: 7000, GainDB: 3, Q: 1.1},
	},
	BleedCuts: []EQPoint{
		{Freq: 150, GainDB: -6, Q: 0.8},
	},
}

// genericProfile is the fallback for custom and unknown classifications:
// broad focus, mild shaping, middle-of-the-road gate behavior.
var genericProfile = Profile{
	FocusBands: []FrequencyBand{
		{Low: 120, High: 350, Weight: 0.8},
		{Low: 2000, High: 8000, Weight: 1.0},
	},
	FloorDB:         -18,
	HoldMin:         0.05,
	HoldMax:         0.12,
	Hysteresis:      0.6,
	ThresholdBiasDB: 0,
	FocusWeight:     1.0,
	Curve:           1.45,
	SidechainHPHz:   60,
}

// ProfileFor returns the tuning profile for a percussion class. The lookup is
// total: custom and unknown classes resolve to the generic profile. The
// returned profile is shared and must not be modified.
func ProfileFor(c Class) *Profile {
	switch c.kind {
	case kindKick:
		return &kickProfile
	case kindSnare:
		return &snareProfile
	case kindToms:
		return &tomsProfile
	case kindHiHat:
		return &hihatProfile
	case kindTambourine, kindClaps:
		return &percussionProfile
	default:
		return &genericProfile
	}
}
