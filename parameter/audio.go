package parameter

// Synthesized cue tuning
const (
	// MarkerToneHz is the placement ping pitch
	MarkerToneHz = 880.0

	// MarkerToneMs is the placement ping length
	MarkerToneMs = 90

	// MissToneHz is the missed-click buzz pitch
	MissToneHz = 120.0

	// MissToneMs is the missed-click buzz length
	MissToneMs = 150

	// CueGain scales cue amplitude into the mixer
	CueGain = 0.25
)
