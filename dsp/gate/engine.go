package gate

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-drumgate/drum"
	"github.com/cwbudde/algo-drumgate/dsp/core"
	"github.com/cwbudde/algo-drumgate/dsp/filter/biquad"
)

// Detection heuristic constants. The boost/cap/transient arithmetic in
// gainFor is an empirically tuned unit: detection may never report less than
// the raw channel peak, while EQ'd or boosted sidechain components are capped
// relative to that peak so a narrow emphasis boost cannot fabricate a
// detection out of noise.
const (
	detectionBoostDB = 12.0
	detectionAbsCap  = 8.0
	transientFactor  = 1.3
)

const (
	minThresholdLinear = 1e-6
	aggressiveFloorDB  = -60.0
	tightnessKneeDB    = 24.0

	minHoldSeconds   = 0.025
	holdReleaseScale = 0.85

	minAttackSeconds  = 0.0004
	minReleaseSeconds = 0.001

	minCloseRatio = 0.25
	maxCloseRatio = 0.95
	minCurve      = 1.1
	maxCurve      = 3.0

	defaultHysteresis = 0.6
	defaultCurve      = 1.45
	defaultFloorDB    = -18.0

	// Hold bounds used when no profile is selected.
	fallbackHoldMin = 0.025
	fallbackHoldMax = 0.25

	int16FullScale = 32768.0
)

// config is the immutable derived snapshot the audio goroutine reads. A new
// config is built on every Reconfigure and published atomically; it is never
// mutated afterwards except for the filter state owned by its detector and
// sidechain chain, which only the audio goroutine touches.
type config struct {
	thresholdLinear float64
	closeRatio      float64
	attackCoeff     float64
	releaseCoeff    float64
	holdSamples     int
	floorGain       float64
	curve           float64
	focusWeight     float64

	detector  *Detector
	sidechain *biquad.Chain
}

// Engine is the real-time gate state machine. One engine gates one stream;
// Reconfigure must be called from a non-real-time context while ProcessFloat32
// / ProcessInt16 run on the audio callback. The envelope and hold state
// deliberately survive reconfiguration so parameter changes do not make the
// gate's physical state jump.
type Engine struct {
	cfg atomic.Pointer[config]

	envelope float64
	hold     int
}

// NewEngine returns an unconfigured engine. Until Reconfigure activates it,
// processing leaves buffers untouched.
func NewEngine() *Engine {
	return &Engine{}
}

// Reconfigure derives a new processing configuration from the settings,
// sample rate, and optional profile, and publishes it atomically. It returns
// whether the gate is now active. Inactive settings or an invalid sample rate
// clear the configuration; subsequent blocks pass through unmodified.
//
// Reconfigure allocates and must never be called from the audio callback.
// It is a full barrier between buffers: apply it only when no block is
// mid-flight.
func (e *Engine) Reconfigure(s Settings, sampleRate float64, profile *drum.Profile) bool {
	if !s.Active || sampleRate <= 0 {
		e.cfg.Store(nil)
		return false
	}

	e.cfg.Store(deriveConfig(s, sampleRate, profile))

	return true
}

// Active reports whether a configuration is currently published.
func (e *Engine) Active() bool {
	return e.cfg.Load() != nil
}

func deriveConfig(s Settings, sampleRate float64, profile *drum.Profile) *config {
	hysteresis := defaultHysteresis
	curve := defaultCurve
	nominalFloorDB := defaultFloorDB
	focusWeight := 1.0
	holdMin := fallbackHoldMin
	holdMax := fallbackHoldMax

	if profile != nil {
		if profile.Hysteresis > 0 {
			hysteresis = profile.Hysteresis
		}

		if profile.Curve > 0 {
			curve = profile.Curve
		}

		if profile.FloorDB < 0 {
			nominalFloorDB = profile.FloorDB
		}

		if profile.FocusWeight > 0 {
			focusWeight = profile.FocusWeight
		}

		if profile.HoldMin > 0 && profile.HoldMax > profile.HoldMin {
			holdMin = profile.HoldMin
			holdMax = profile.HoldMax
		}
	}

	// As the threshold is pushed toward 0 dBFS the user is gating strictly,
	// so the closed-state leak is pulled toward near-silence. At or below
	// -24 dB the profile's gentler nominal floor applies unmodified.
	tightness := core.Clamp((s.ThresholdDB+tightnessKneeDB)/tightnessKneeDB, 0, 1)
	floorDB := nominalFloorDB + (aggressiveFloorDB-nominalFloorDB)*tightness

	holdSeconds := core.Clamp(math.Max(minHoldSeconds, s.Release*holdReleaseScale), holdMin, holdMax)

	attackCoeff := 0.0
	if s.Attack > 0 {
		attackCoeff = math.Exp(-1 / (sampleRate * math.Max(s.Attack, minAttackSeconds)))
	}

	// ln(1000) ties the release constant to a -60 dB decay convention: the
	// envelope decays to 0.1% of its excess over the nominal release time.
	releaseCoeff := 0.0
	if s.Release > 0 {
		releaseCoeff = math.Exp(-math.Log(1000) / (sampleRate * math.Max(s.Release, minReleaseSeconds)))
	}

	cfg := &config{
		thresholdLinear: math.Max(core.DBToLinear(s.ThresholdDB), minThresholdLinear),
		closeRatio:      core.Clamp(hysteresis, minCloseRatio, maxCloseRatio),
		attackCoeff:     attackCoeff,
		releaseCoeff:    releaseCoeff,
		holdSamples:     int(math.Max(1, math.Round(sampleRate*holdSeconds))),
		floorGain:       core.DBToLinear(floorDB),
		curve:           core.Clamp(curve, minCurve, maxCurve),
		focusWeight:     focusWeight,
		sidechain:       BuildSidechainEQ(profile, sampleRate),
	}

	if profile != nil {
		if det, ok := NewDetector(profile.FocusBands, sampleRate); ok {
			cfg.detector = det
		}
	}

	return cfg
}

// gainFor advances the gate state machine by one sample and returns the gain
// to apply. mono is the channel average, rawPeak the maximum absolute
// per-channel sample normalized to full scale. Zero-alloc.
func (e *Engine) gainFor(cfg *config, mono, rawPeak float64) float64 {
	sidechain := cfg.sidechain.ProcessSample(mono)
	broadband := math.Abs(sidechain)

	focus := 0.0
	if cfg.detector != nil {
		focus = cfg.detector.ProcessSample(sidechain) * cfg.focusWeight
	}

	detectionBoost := core.DBToLinear(detectionBoostDB)
	detectionCap := detectionAbsCap * detectionBoost

	boostedLimit := math.Max(rawPeak*detectionBoost, rawPeak)
	detected := math.Max(broadband, focus)
	detected = math.Min(boostedLimit, detected)
	detected = math.Min(detectionAbsCap, detected)
	detected = math.Min(detectionCap, detected)
	detected = math.Max(rawPeak, detected)

	// Asymmetric one-pole smoothing toward the detected level: coeff near 1
	// is slow, near 0 is instant.
	coeff := cfg.releaseCoeff
	if detected > e.envelope {
		coeff = cfg.attackCoeff
	}

	e.envelope = core.FlushDenormals(coeff*(e.envelope-detected) + detected)

	ratio := e.envelope / cfg.thresholdLinear

	// The transient check uses the raw, unsmoothed peak so fast hits are
	// never swallowed by envelope lag.
	transient := rawPeak >= cfg.thresholdLinear*transientFactor

	if ratio >= 1 {
		e.hold = cfg.holdSamples
	}

	if transient {
		if e.hold < cfg.holdSamples {
			e.hold = cfg.holdSamples
		}

		if rawPeak > e.envelope {
			e.envelope = rawPeak
		}
	}

	switch {
	case transient:
		return 1

	case e.hold > 0:
		e.hold--
		return 1

	case ratio >= cfg.closeRatio:
		t := core.Clamp((ratio-cfg.closeRatio)/(1-cfg.closeRatio), 0, 1)

		gain := math.Pow(t, cfg.curve)
		if gain < cfg.floorGain {
			gain = cfg.floorGain
		}

		return gain

	default:
		return cfg.floorGain
	}
}

// frameCount returns the number of frames safe to process across channels.
func frameCount[T int16 | float32](channels [][]T) int {
	if len(channels) == 0 {
		return 0
	}

	n := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) < n {
			n = len(ch)
		}
	}

	return n
}

// ProcessFloat32 gates a block of 32-bit float channels in place. With no
// active configuration every sample is left bit-for-bit unchanged.
// Real-time safe: no allocation, no locks, no blocking.
func (e *Engine) ProcessFloat32(channels [][]float32) {
	cfg := e.cfg.Load()
	if cfg == nil {
		return
	}

	frames := frameCount(channels)
	if frames == 0 {
		return
	}

	invChannels := 1 / float64(len(channels))

	for i := 0; i < frames; i++ {
		var sum, rawPeak float64

		for _, ch := range channels {
			v := float64(ch[i])
			sum += v

			if a := math.Abs(v); a > rawPeak {
				rawPeak = a
			}
		}

		gain := e.gainFor(cfg, sum*invChannels, rawPeak)
		if gain == 1 {
			continue
		}

		for _, ch := range channels {
			ch[i] = float32(float64(ch[i]) * gain)
		}
	}
}

// ProcessInt16 gates a block of 16-bit signed integer PCM channels in place.
// Samples are normalized against full scale for detection; written samples
// are rounded and clamped to the representable range.
// Real-time safe: no allocation, no locks, no blocking.
func (e *Engine) ProcessInt16(channels [][]int16) {
	cfg := e.cfg.Load()
	if cfg == nil {
		return
	}

	frames := frameCount(channels)
	if frames == 0 {
		return
	}

	invChannels := 1 / float64(len(channels))

	for i := 0; i < frames; i++ {
		var sum, rawPeak float64

		for _, ch := range channels {
			v := float64(ch[i]) / int16FullScale
			sum += v

			if a := math.Abs(v); a > rawPeak {
				rawPeak = a
			}
		}

		gain := e.gainFor(cfg, sum*invChannels, rawPeak)
		if gain == 1 {
			continue
		}

		for _, ch := range channels {
			scaled := math.Round(float64(ch[i]) * gain)
			ch[i] = int16(core.Clamp(scaled, -32768, 32767))
		}
	}
}
