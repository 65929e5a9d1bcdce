package systems

import (
	"time"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/constants"
	"github.com/shanebenlolo/hypersphere/core"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/geo"
	"github.com/shanebenlolo/hypersphere/parameter"
	"github.com/shanebenlolo/hypersphere/render"
	"github.com/shanebenlolo/hypersphere/vmath"
)

// AudioCues is the slice of the sound surface marker placement needs.
// A nil implementation mutes the system
type AudioCues interface {
	PlayMarkerDrop()
	PlayMiss()
}

// Click is one queued surface pick: the clicked cell and the drawable
// grid size at click time
type Click struct {
	X, Y int
	W, H int
}

var markerStyles = []struct {
	glyph rune
	color core.RGB
}{
	{'◆', core.RGB{R: 255, G: 90, B: 90}},
	{'●', core.RGB{R: 255, G: 200, B: 60}},
	{'▲', core.RGB{R: 120, G: 255, B: 140}},
	{'■', core.RGB{R: 130, G: 170, B: 255}},
}

// MarkerSystem turns queued clicks into surface markers. A click is
// unprojected to a ray, intersected with the globe, carried into the
// body frame, and spawned as a new marker entity; clicks that miss the
// globe only sound the miss cue. The frame loop owns it: EnqueueClick
// and Update must run on the same goroutine
type MarkerSystem struct {
	camera engine.Entity
	earth  engine.Entity
	cues   AudioCues

	clicks    []Click
	last      geo.LatLon
	hasLast   bool
	nextStyle int
	err       error
}

// NewMarkerSystem binds the system to the scene's camera and globe
// entities
func NewMarkerSystem(camera, earth engine.Entity, cues AudioCues) *MarkerSystem {
	return &MarkerSystem{camera: camera, earth: earth, cues: cues}
}

// EnqueueClick stages one click for the next update
func (s *MarkerSystem) EnqueueClick(c Click) {
	s.clicks = append(s.clicks, c)
}

// LastPlaced reports the most recent marker coordinate
func (s *MarkerSystem) LastPlaced() (geo.LatLon, bool) {
	return s.last, s.hasLast
}

// Err reports the first component write failure, which only a store
// misuse bug can produce
func (s *MarkerSystem) Err() error {
	return s.err
}

func (s *MarkerSystem) Priority() int {
	return parameter.SystemPriorityMarker
}

func (s *MarkerSystem) Update(store *engine.Store, dt time.Duration) {
	if len(s.clicks) == 0 {
		return
	}
	clicks := s.clicks
	s.clicks = s.clicks[:0]

	cam, ok := engine.GetComponent[components.Camera](store, s.camera)
	if !ok {
		return
	}
	tr, ok := engine.GetComponent[components.Transform](store, s.earth)
	if !ok {
		return
	}
	body, ok := engine.GetComponent[components.Body](store, s.earth)
	if !ok {
		return
	}

	// Spawning below may relocate collections, so take values now and
	// drop the pointers
	camState := *cam
	trState := *tr
	radius := body.RadiusKM

	for _, c := range clicks {
		view := render.View{
			Target:   camState.Target,
			Yaw:      camState.Yaw,
			Pitch:    camState.Pitch,
			Distance: camState.Distance,
			Focal:    camState.Focal,
			W:        c.W,
			H:        c.H,
		}
		origin, dir := view.UnprojectRay(c.X, c.Y)

		t, hit := vmath.RaySphere(origin, dir, trState.Position, radius)
		if !hit {
			if s.cues != nil {
				s.cues.PlayMiss()
			}
			continue
		}

		world := vmath.V3FAdd(origin, vmath.V3FScale(dir, t))
		ll := geo.CartesianToLatLon(trState.Unapply(world))

		style := markerStyles[s.nextStyle%len(markerStyles)]
		s.nextStyle++

		b := store.Spawn()
		engine.With(b, components.Marker{
			LatDeg:   ll.LatDeg,
			LonDeg:   ll.LonDeg,
			HeightKM: constants.MarkerHeightKM,
			Glyph:    style.glyph,
			Color:    style.color,
		})
		engine.With(b, components.RenderPipeline{Kind: components.PipelineBillboard})
		if _, err := b.Build(); err != nil {
			if s.err == nil {
				s.err = err
			}
			continue
		}

		s.last = ll
		s.hasLast = true
		if s.cues != nil {
			s.cues.PlayMarkerDrop()
		}
	}
}
