package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func v3fApproxEq(a, b Vec3F) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func TestV3FBasicOps(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, 5, 6}

	if got := V3FAdd(a, b); !v3fApproxEq(got, Vec3F{5, 7, 9}) {
		t.Errorf("Expected {5 7 9}, got %+v", got)
	}
	if got := V3FSub(b, a); !v3fApproxEq(got, Vec3F{3, 3, 3}) {
		t.Errorf("Expected {3 3 3}, got %+v", got)
	}
	if got := V3FScale(a, 2); !v3fApproxEq(got, Vec3F{2, 4, 6}) {
		t.Errorf("Expected {2 4 6}, got %+v", got)
	}
	if got := V3FDot(a, b); !approxEq(got, 32) {
		t.Errorf("Expected dot 32, got %f", got)
	}
}

func TestV3FCross(t *testing.T) {
	x := Vec3F{1, 0, 0}
	y := Vec3F{0, 1, 0}

	if got := V3FCross(x, y); !v3fApproxEq(got, Vec3F{0, 0, 1}) {
		t.Errorf("Expected x cross y = z, got %+v", got)
	}
	if got := V3FCross(y, x); !v3fApproxEq(got, Vec3F{0, 0, -1}) {
		t.Errorf("Expected y cross x = -z, got %+v", got)
	}
}

func TestV3FNormalize(t *testing.T) {
	v := V3FNormalize(Vec3F{3, 4, 0})
	if !approxEq(V3FMag(v), 1) {
		t.Errorf("Expected unit magnitude, got %f", V3FMag(v))
	}
	if !v3fApproxEq(v, Vec3F{0.6, 0.8, 0}) {
		t.Errorf("Expected {0.6 0.8 0}, got %+v", v)
	}

	// Zero vector normalizes to zero rather than NaN
	if got := V3FNormalize(Vec3F{}); !v3fApproxEq(got, Vec3F{}) {
		t.Errorf("Expected zero vector, got %+v", got)
	}
}

func TestV3FRotate(t *testing.T) {
	x := Vec3F{1, 0, 0}

	// Quarter turn about Y carries +X to -Z in a right-handed frame
	if got := V3FRotateY(x, math.Pi/2); !v3fApproxEq(got, Vec3F{0, 0, -1}) {
		t.Errorf("Expected {0 0 -1}, got %+v", got)
	}
	// Quarter turn about Z carries +X to +Y
	if got := V3FRotateZ(x, math.Pi/2); !v3fApproxEq(got, Vec3F{0, 1, 0}) {
		t.Errorf("Expected {0 1 0}, got %+v", got)
	}
	// Full turn returns the input
	if got := V3FRotateX(Vec3F{1, 2, 3}, 2*math.Pi); !v3fApproxEq(got, Vec3F{1, 2, 3}) {
		t.Errorf("Expected identity after full turn, got %+v", got)
	}
	// Rotation preserves magnitude
	v := Vec3F{2, -3, 5}
	if got := V3FRotateY(v, 1.234); !approxEq(V3FMag(got), V3FMag(v)) {
		t.Errorf("Expected magnitude preserved, got %f want %f", V3FMag(got), V3FMag(v))
	}
}
