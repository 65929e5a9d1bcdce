package components

import "github.com/shanebenlolo/hypersphere/core"

// Marker anchors an annotation to a surface coordinate. The anchor
// rides the body's rotation, so markers stay pinned to the ground
// point they were dropped on
type Marker struct {
	LatDeg   float64
	LonDeg   float64
	HeightKM float64 // lift above the surface
	Glyph    rune
	Color    core.RGB
}
