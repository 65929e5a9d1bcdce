package render

import (
	"github.com/shanebenlolo/hypersphere/vmath"
)

// minDepth keeps the projection denominator away from the camera plane
const minDepth = 1.0

// View freezes one frame's camera state against the drawable cell
// grid. The camera frame puts the orbit target at the origin with the
// camera at (0,0,-Distance) looking down +Z
type View struct {
	Target   vmath.Vec3F
	Yaw      float64
	Pitch    float64
	Distance float64
	Focal    float64
	W, H     int // drawable cells, HUD rows excluded
}

// Projected is a world point on the fractional cell grid
type Projected struct {
	CX, CY float64
	Scale  float64 // vertical cells per kilometer at this depth
	Depth  float64 // kilometers along the camera forward axis
}

// WorldToView rotates a world point into the camera frame
func (v *View) WorldToView(p vmath.Vec3F) vmath.Vec3F {
	q := vmath.V3FSub(p, v.Target)
	q = vmath.V3FRotateY(q, -v.Yaw)
	return vmath.V3FRotateX(q, -v.Pitch)
}

// Eye returns the camera's world position
func (v *View) Eye() vmath.Vec3F {
	back := vmath.Vec3F{Z: -v.Distance}
	back = vmath.V3FRotateX(back, v.Pitch)
	back = vmath.V3FRotateY(back, v.Yaw)
	return vmath.V3FAdd(v.Target, back)
}

// Project maps a world point onto the cell grid. The second return is
// false for points on or behind the camera plane. Horizontal spread is
// doubled for the 1:2 terminal cell aspect
func (v *View) Project(p vmath.Vec3F) (Projected, bool) {
	q := v.WorldToView(p)
	depth := q.Z + v.Distance
	if depth < minDepth {
		return Projected{}, false
	}

	persp := v.Focal * float64(v.H) / depth
	return Projected{
		CX:    float64(v.W)/2.0 + q.X*persp*2.0,
		CY:    float64(v.H)/2.0 - q.Y*persp,
		Scale: persp,
		Depth: depth,
	}, true
}

// UnprojectRay returns the world-space ray through the center of cell
// (sx, sy): the camera eye and a unit direction
func (v *View) UnprojectRay(sx, sy int) (origin, dir vmath.Vec3F) {
	fh := v.Focal * float64(v.H)
	d := vmath.Vec3F{
		X: (float64(sx) + 0.5 - float64(v.W)/2.0) / (2.0 * fh),
		Y: -(float64(sy) + 0.5 - float64(v.H)/2.0) / fh,
		Z: 1,
	}
	d = vmath.V3FRotateX(d, v.Pitch)
	d = vmath.V3FRotateY(d, v.Yaw)
	return v.Eye(), vmath.V3FNormalize(d)
}
