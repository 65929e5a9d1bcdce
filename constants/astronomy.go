package constants

// Physical body dimensions, kilometers. World space uses kilometers
// throughout so component data can hold these directly
const (
	// EarthRadiusEquatorKM is the WGS84 semi-major axis, rounded
	EarthRadiusEquatorKM = 6378.0

	// EarthRadiusPoleKM is the WGS84 semi-minor axis, rounded
	EarthRadiusPoleKM = 6357.0

	// MoonRadiusKM is the mean lunar radius
	MoonRadiusKM = 1737.4

	// MoonMeanDistanceKM is the mean Earth-Moon separation
	MoonMeanDistanceKM = 384400.0

	// EarthAxialTiltDeg tilts the lunar orbital frame against the
	// equatorial frame of the scene
	EarthAxialTiltDeg = -23.5
)
