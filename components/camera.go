package components

import "github.com/shanebenlolo/hypersphere/vmath"

// Camera holds orbit-camera state: the camera rides a sphere around
// Target, positioned by yaw and pitch, at Distance kilometers. Focal
// scales the perspective projection
type Camera struct {
	Target   vmath.Vec3F
	Yaw      float64 // radians around the world Y axis
	Pitch    float64 // radians above the equatorial plane
	Distance float64 // kilometers from target
	Focal    float64 // projection focal length, dimensionless
}

// Eye returns the camera's world position for the current orbit state
func (c *Camera) Eye() vmath.Vec3F {
	back := vmath.Vec3F{X: 0, Y: 0, Z: -c.Distance}
	back = vmath.V3FRotateX(back, c.Pitch)
	back = vmath.V3FRotateY(back, c.Yaw)
	return vmath.V3FAdd(c.Target, back)
}
