package systems

import (
	"math"
	"testing"
	"time"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/parameter"
)

func newCameraFixture(t *testing.T) (*engine.Store, engine.Entity, *CameraSystem) {
	t.Helper()
	store := engine.NewStore()
	e := store.NewEntity()
	engine.AddComponent(store, e, components.Camera{
		Yaw:      0.5,
		Pitch:    0.2,
		Distance: 20000,
		Focal:    1.2,
	})
	return store, e, NewCameraSystem(store, e)
}

// Test orbit commands move yaw and pitch by the step
func TestCameraOrbit(t *testing.T) {
	store, e, sys := newCameraFixture(t)

	sys.Enqueue(CameraOrbitLeft)
	sys.Enqueue(CameraOrbitLeft)
	sys.Enqueue(CameraOrbitUp)
	sys.Update(store, 16*time.Millisecond)

	cam, _ := engine.GetComponent[components.Camera](store, e)
	if math.Abs(cam.Yaw-(0.5-2*parameter.CameraOrbitStepRad)) > 1e-9 {
		t.Errorf("Expected yaw stepped left twice, got %f", cam.Yaw)
	}
	if math.Abs(cam.Pitch-(0.2+parameter.CameraOrbitStepRad)) > 1e-9 {
		t.Errorf("Expected pitch stepped up once, got %f", cam.Pitch)
	}
}

// Test zoom multiplies distance within the clamp range
func TestCameraZoomClamped(t *testing.T) {
	store, e, sys := newCameraFixture(t)

	for i := 0; i < 100; i++ {
		sys.Enqueue(CameraZoomIn)
	}
	sys.Update(store, 16*time.Millisecond)
	cam, _ := engine.GetComponent[components.Camera](store, e)
	if cam.Distance != parameter.CameraMinDistanceKM {
		t.Errorf("Expected distance clamped to minimum, got %f", cam.Distance)
	}

	for i := 0; i < 200; i++ {
		sys.Enqueue(CameraZoomOut)
	}
	sys.Update(store, 16*time.Millisecond)
	cam, _ = engine.GetComponent[components.Camera](store, e)
	if cam.Distance != parameter.CameraMaxDistanceKM {
		t.Errorf("Expected distance clamped to maximum, got %f", cam.Distance)
	}
}

// Test pitch stays short of the poles
func TestCameraPitchClamped(t *testing.T) {
	store, e, sys := newCameraFixture(t)

	for i := 0; i < 100; i++ {
		sys.Enqueue(CameraOrbitUp)
	}
	sys.Update(store, 16*time.Millisecond)

	cam, _ := engine.GetComponent[components.Camera](store, e)
	if cam.Pitch != parameter.CameraMaxPitchRad {
		t.Errorf("Expected pitch clamped, got %f", cam.Pitch)
	}
}

// Test reset restores the construction-time state
func TestCameraReset(t *testing.T) {
	store, e, sys := newCameraFixture(t)

	sys.Enqueue(CameraOrbitRight)
	sys.Enqueue(CameraZoomOut)
	sys.Enqueue(CameraReset)
	sys.Update(store, 16*time.Millisecond)

	cam, _ := engine.GetComponent[components.Camera](store, e)
	if cam.Yaw != 0.5 || cam.Pitch != 0.2 || cam.Distance != 20000 {
		t.Errorf("Expected home state restored, got %+v", *cam)
	}
}

// Test commands drain after one update
func TestCameraQueueDrains(t *testing.T) {
	store, e, sys := newCameraFixture(t)

	sys.Enqueue(CameraOrbitRight)
	sys.Update(store, 16*time.Millisecond)
	cam, _ := engine.GetComponent[components.Camera](store, e)
	yawAfterFirst := cam.Yaw

	sys.Update(store, 16*time.Millisecond)
	cam, _ = engine.GetComponent[components.Camera](store, e)
	if cam.Yaw != yawAfterFirst {
		t.Errorf("Expected no movement on drained queue, got %f then %f", yawAfterFirst, cam.Yaw)
	}
}
