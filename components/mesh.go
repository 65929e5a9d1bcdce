package components

import "github.com/shanebenlolo/hypersphere/vmath"

// Mesh holds tessellated geometry for one entity. Vertices are world
// units (kilometers) around the model origin; Indices are triangle-strip
// order with degenerate stitch vertices between strip rows
type Mesh struct {
	Vertices []vmath.Vec3F
	Indices  []uint32
}
