package parameter

// Display-time motion tuning. The true Earth-Moon distance renders the
// moon as a sub-cell speck, so the demo compresses the orbit while the
// real value stays available in constants
const (
	// MoonDisplayOrbitKM is the compressed lunar orbit radius
	MoonDisplayOrbitKM = 16000.0

	// MoonOrbitPeriodS revolves the moon once per this many wall seconds
	MoonOrbitPeriodS = 90.0

	// EarthSpinPeriodS turns the globe once per this many wall seconds
	EarthSpinPeriodS = 120.0
)
