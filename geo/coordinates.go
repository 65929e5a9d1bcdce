// Package geo maps between geographic coordinates and the scene's
// cartesian frame. The frame puts +Y through the north pole, +X through
// the equator at the prime meridian, and winds longitude westward
// around Y, so east longitudes land at negative Z
package geo

import (
	"math"

	"github.com/shanebenlolo/hypersphere/vmath"
)

// LatLon is a geographic coordinate in degrees
type LatLon struct {
	LatDeg float64
	LonDeg float64
}

// LatLonToCartesian places a geographic coordinate on a sphere of the
// given radius. Latitude runs -90 (south) to 90 (north), longitude
// -180 to 180 with east positive
func LatLonToCartesian(latDeg, lonDeg, radius float64) vmath.Vec3F {
	phi := (90 - latDeg) * math.Pi / 180
	theta := (360 - lonDeg) * math.Pi / 180

	sinPhi := math.Sin(phi)
	return vmath.Vec3F{
		X: radius * sinPhi * math.Cos(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Sin(theta),
	}
}

// CartesianToLatLon inverts LatLonToCartesian for any point off the
// origin. Points on the Y axis have no defined longitude and report 0
func CartesianToLatLon(p vmath.Vec3F) LatLon {
	r := vmath.V3FMag(p)
	if r == 0 {
		return LatLon{}
	}

	lat := math.Asin(p.Y/r) * 180 / math.Pi
	lon := -math.Atan2(p.Z, p.X) * 180 / math.Pi
	return LatLon{LatDeg: lat, LonDeg: normalizeLon(lon)}
}

// normalizeLon folds a longitude into [-180, 180)
func normalizeLon(lonDeg float64) float64 {
	lon := math.Mod(lonDeg+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
