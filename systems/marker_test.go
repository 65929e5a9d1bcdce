package systems

import (
	"math"
	"testing"
	"time"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/geo"
	"github.com/shanebenlolo/hypersphere/parameter"
	"github.com/shanebenlolo/hypersphere/vmath"
)

// cueRecorder counts cue requests in place of the speaker
type cueRecorder struct {
	drops  int
	misses int
}

func (c *cueRecorder) PlayMarkerDrop() { c.drops++ }
func (c *cueRecorder) PlayMiss()       { c.misses++ }

// markerScene builds the minimal store a marker system needs: a camera
// looking at a globe of radius 50 from 100km out
func markerScene(t *testing.T) (*engine.Store, engine.Entity, engine.Entity) {
	t.Helper()
	store := engine.NewStore()

	camera := store.NewEntity()
	if err := engine.AddComponent(store, camera, components.Camera{
		Distance: 100,
		Focal:    parameter.CameraFocalLength,
	}); err != nil {
		t.Fatalf("AddComponent failed: %v", err)
	}

	earth := store.NewEntity()
	if err := engine.AddComponent(store, earth, components.Transform{}); err != nil {
		t.Fatalf("AddComponent failed: %v", err)
	}
	if err := engine.AddComponent(store, earth, components.Body{Name: "earth", RadiusKM: 50}); err != nil {
		t.Fatalf("AddComponent failed: %v", err)
	}

	return store, camera, earth
}

// Test a center click hits the globe and spawns exactly one marker on
// the sub-camera surface point
func TestMarkerCenterClick(t *testing.T) {
	store, camera, earth := markerScene(t)
	cues := &cueRecorder{}
	sys := NewMarkerSystem(camera, earth, cues)

	before := store.EntityCount()
	sys.EnqueueClick(Click{X: 40, Y: 12, W: 81, H: 25})
	sys.Update(store, time.Millisecond)
	if err := sys.Err(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if store.EntityCount() != before+1 {
		t.Fatalf("Expected one spawned entity, count went %d to %d", before, store.EntityCount())
	}

	placed := engine.QueryWith[components.Marker, components.RenderPipeline](store)
	if len(placed) != 1 {
		t.Fatalf("Expected one marker entity, got %v", placed)
	}
	m, _ := engine.GetComponent[components.Marker](store, placed[0])

	// The sub-camera point sits on the -Z axis in the body frame
	anchor := geo.LatLonToCartesian(m.LatDeg, m.LonDeg, 50)
	if vmath.V3FDist(anchor, vmath.Vec3F{Z: -50}) > 1.0 {
		t.Errorf("Expected marker at the sub-camera point, got %+v", anchor)
	}
	if math.Abs(m.LatDeg) > 1.0 {
		t.Errorf("Expected equatorial latitude, got %f", m.LatDeg)
	}

	pipe, _ := engine.GetComponent[components.RenderPipeline](store, placed[0])
	if pipe.Kind != components.PipelineBillboard {
		t.Errorf("Expected billboard pipeline, got %v", pipe.Kind)
	}

	if cues.drops != 1 || cues.misses != 0 {
		t.Errorf("Expected one drop cue, got drops=%d misses=%d", cues.drops, cues.misses)
	}

	last, ok := sys.LastPlaced()
	if !ok || last.LatDeg != m.LatDeg || last.LonDeg != m.LonDeg {
		t.Errorf("Expected LastPlaced to report the marker, got %+v ok=%v", last, ok)
	}
}

// Test a click past the limb misses: no entity, only the miss cue
func TestMarkerMissClick(t *testing.T) {
	store, camera, earth := markerScene(t)
	cues := &cueRecorder{}
	sys := NewMarkerSystem(camera, earth, cues)

	before := store.EntityCount()
	sys.EnqueueClick(Click{X: 0, Y: 0, W: 81, H: 25})
	sys.Update(store, time.Millisecond)

	if store.EntityCount() != before {
		t.Errorf("Expected no spawn on a miss, count went %d to %d", before, store.EntityCount())
	}
	if cues.drops != 0 || cues.misses != 1 {
		t.Errorf("Expected one miss cue, got drops=%d misses=%d", cues.drops, cues.misses)
	}
	if _, ok := sys.LastPlaced(); ok {
		t.Error("Expected no placement recorded after a miss")
	}
}

// Test the click queue drains per update instead of replaying
func TestMarkerQueueDrains(t *testing.T) {
	store, camera, earth := markerScene(t)
	sys := NewMarkerSystem(camera, earth, nil)

	sys.EnqueueClick(Click{X: 40, Y: 12, W: 81, H: 25})
	sys.Update(store, time.Millisecond)
	count := store.EntityCount()

	sys.Update(store, time.Millisecond)
	if store.EntityCount() != count {
		t.Errorf("Expected an empty queue on the second update, count went %d to %d",
			count, store.EntityCount())
	}
}

// Test nil cues mute the system without disabling placement
func TestMarkerNilCues(t *testing.T) {
	store, camera, earth := markerScene(t)
	sys := NewMarkerSystem(camera, earth, nil)

	sys.EnqueueClick(Click{X: 40, Y: 12, W: 81, H: 25})
	sys.Update(store, time.Millisecond)

	if got := len(engine.QueryWith[components.Marker, components.RenderPipeline](store)); got != 1 {
		t.Errorf("Expected placement with nil cues, got %d markers", got)
	}
}

// Test the click ray respects a rotated body: the marker's anchor
// carried through the transform lands where the ray hit
func TestMarkerTracksSpin(t *testing.T) {
	store, camera, earth := markerScene(t)
	tr, _ := engine.GetComponent[components.Transform](store, earth)
	tr.SpinAngle = 1.1

	sys := NewMarkerSystem(camera, earth, nil)
	sys.EnqueueClick(Click{X: 40, Y: 12, W: 81, H: 25})
	sys.Update(store, time.Millisecond)

	placed := engine.QueryWith[components.Marker, components.RenderPipeline](store)
	if len(placed) != 1 {
		t.Fatalf("Expected one marker, got %v", placed)
	}
	m, _ := engine.GetComponent[components.Marker](store, placed[0])
	tr, _ = engine.GetComponent[components.Transform](store, earth)

	world := tr.Apply(geo.LatLonToCartesian(m.LatDeg, m.LonDeg, 50))
	if vmath.V3FDist(world, vmath.Vec3F{Z: -50}) > 1.0 {
		t.Errorf("Expected the anchor back at the hit point, got %+v", world)
	}
}
