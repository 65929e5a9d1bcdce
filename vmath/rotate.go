package vmath

import (
	"math"
)

// Axis rotations, right-handed, angles in radians

func V3FRotateX(v Vec3F, angle float64) Vec3F {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3F{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

func V3FRotateY(v Vec3F, angle float64) Vec3F {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3F{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

func V3FRotateZ(v Vec3F, angle float64) Vec3F {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3F{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}
