package constants

// Marker placement constants
const (
	// MarkerHeightKM lifts markers off the surface so they never
	// z-fight with the globe shell
	MarkerHeightKM = 10.0

	// MarkerSizeKM is the nominal billboard edge length
	MarkerSizeKM = 500.0
)
