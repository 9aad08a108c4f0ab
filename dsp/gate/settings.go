package gate

// Settings is the user-facing gate configuration. Callers create a value,
// hand it to [Engine.Reconfigure], and may replace it wholesale at any time;
// each replacement requires another Reconfigure call before further blocks
// are processed.
type Settings struct {
	// ThresholdDB is the open threshold relative to full scale.
	ThresholdDB float64

	// Attack and Release are envelope time constants in seconds.
	Attack  float64
	Release float64

	// Active disables all gating when false; samples pass through unmodified.
	Active bool

	// AutoApplied records that these values came from the suggestion
	// analyzer rather than manual tuning. Informational only.
	AutoApplied bool
}
