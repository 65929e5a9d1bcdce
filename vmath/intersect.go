package vmath

import "math"

// RaySphere intersects a ray with a sphere. dir must be unit length.
// Returns the distance along the ray to the nearest hit at or in front
// of the origin, and false when the ray misses entirely or the sphere
// lies fully behind it
func RaySphere(origin, dir, center Vec3F, radius float64) (float64, bool) {
	oc := V3FSub(origin, center)
	b := V3FDot(oc, dir)
	c := V3FMagSq(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
