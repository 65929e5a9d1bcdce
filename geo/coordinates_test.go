package geo

import (
	"math"
	"testing"

	"github.com/shanebenlolo/hypersphere/vmath"
)

const epsilon = 1e-9

// Test known anchor points on a unit sphere
func TestLatLonToCartesianAnchors(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     vmath.Vec3F
	}{
		{"equator at prime meridian", 0, 0, vmath.Vec3F{X: 1, Y: 0, Z: 0}},
		{"north pole", 90, 0, vmath.Vec3F{X: 0, Y: 1, Z: 0}},
		{"south pole", -90, 0, vmath.Vec3F{X: 0, Y: -1, Z: 0}},
		{"equator at 90 east", 0, 90, vmath.Vec3F{X: 0, Y: 0, Z: -1}},
		{"equator at 90 west", 0, -90, vmath.Vec3F{X: 0, Y: 0, Z: 1}},
	}

	for _, tc := range tests {
		got := LatLonToCartesian(tc.lat, tc.lon, 1)
		if math.Abs(got.X-tc.want.X) > epsilon ||
			math.Abs(got.Y-tc.want.Y) > epsilon ||
			math.Abs(got.Z-tc.want.Z) > epsilon {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

// Test the mapping lands on the requested radius
func TestLatLonToCartesianRadius(t *testing.T) {
	const radius = 6378.0
	for lat := -80.0; lat <= 80; lat += 20 {
		for lon := -160.0; lon <= 160; lon += 40 {
			p := LatLonToCartesian(lat, lon, radius)
			if r := vmath.V3FMag(p); math.Abs(r-radius) > 1e-6 {
				t.Fatalf("Expected radius %f at (%f,%f), got %f", radius, lat, lon, r)
			}
		}
	}
}

// Test cartesian conversion inverts the forward mapping
func TestCartesianRoundTrip(t *testing.T) {
	const radius = 1737.4
	for lat := -75.0; lat <= 75; lat += 15 {
		for lon := -165.0; lon <= 165; lon += 30 {
			p := LatLonToCartesian(lat, lon, radius)
			got := CartesianToLatLon(p)
			if math.Abs(got.LatDeg-lat) > 1e-6 || math.Abs(got.LonDeg-lon) > 1e-6 {
				t.Errorf("Round trip (%f,%f) came back (%f,%f)", lat, lon, got.LatDeg, got.LonDeg)
			}
		}
	}
}

// Test degenerate inputs stay defined
func TestCartesianToLatLonDegenerate(t *testing.T) {
	if got := CartesianToLatLon(vmath.Vec3F{}); got.LatDeg != 0 || got.LonDeg != 0 {
		t.Errorf("Expected origin to map to (0,0), got %+v", got)
	}
	if got := CartesianToLatLon(vmath.Vec3F{Y: 5}); math.Abs(got.LatDeg-90) > epsilon || got.LonDeg != 0 {
		t.Errorf("Expected pole to map to lat 90 lon 0, got %+v", got)
	}
}
