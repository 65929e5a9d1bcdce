package components

import "github.com/shanebenlolo/hypersphere/core"

// Material holds the shading record for one entity
type Material struct {
	Base      core.RGB // surface color before lighting
	Ambient   float64  // floor light level
	Diffuse   float64  // lambert weight
	Specular  float64  // highlight weight
	Shininess float64  // highlight exponent
	Rim       float64  // limb brightening weight

	// PolarCap whitens the surface past the polar circles; Graticule
	// darkens cells on the 30 degree lat/lon grid. Zero disables either
	PolarCap  float64
	Graticule float64
}
