package parameter

// Default tessellation detail. The -detail flag scales these
const (
	EarthSectorsDefault = 36
	EarthStacksDefault  = 18

	MoonSectorsDefault = 24
	MoonStacksDefault  = 12
)
