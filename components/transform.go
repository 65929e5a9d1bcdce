package components

import "github.com/shanebenlolo/hypersphere/vmath"

// Transform places an entity in world space. SpinAngle turns the body
// around its own axis; TiltRad leans that axis off world Y. Surface
// points map world = Position + RotateZ(TiltRad)·RotateY(SpinAngle)·local
type Transform struct {
	Position  vmath.Vec3F
	SpinAngle float64
	TiltRad   float64
}

// Apply carries a model-local point into world space
func (t *Transform) Apply(local vmath.Vec3F) vmath.Vec3F {
	p := vmath.V3FRotateY(local, t.SpinAngle)
	p = vmath.V3FRotateZ(p, t.TiltRad)
	return vmath.V3FAdd(t.Position, p)
}

// Unapply carries a world point back to model-local space
func (t *Transform) Unapply(world vmath.Vec3F) vmath.Vec3F {
	p := vmath.V3FSub(world, t.Position)
	p = vmath.V3FRotateZ(p, -t.TiltRad)
	return vmath.V3FRotateY(p, -t.SpinAngle)
}
