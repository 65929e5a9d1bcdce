package systems

import (
	"time"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/parameter"
)

// CameraCommand is one queued camera input
type CameraCommand int

const (
	CameraOrbitLeft CameraCommand = iota
	CameraOrbitRight
	CameraOrbitUp
	CameraOrbitDown
	CameraZoomIn
	CameraZoomOut
	CameraReset
)

// CameraSystem applies queued orbit and zoom input to the camera
// entity. The frame loop owns it: Enqueue and Update must run on the
// same goroutine
type CameraSystem struct {
	camera  engine.Entity
	pending []CameraCommand

	homeYaw, homePitch, homeDistance float64
}

// NewCameraSystem binds the system to the scene's camera entity. The
// camera's current state becomes the reset target
func NewCameraSystem(store *engine.Store, camera engine.Entity) *CameraSystem {
	s := &CameraSystem{camera: camera}
	if cam, ok := engine.GetComponent[components.Camera](store, camera); ok {
		s.homeYaw = cam.Yaw
		s.homePitch = cam.Pitch
		s.homeDistance = cam.Distance
	}
	return s
}

// Enqueue stages one command for the next update
func (s *CameraSystem) Enqueue(cmd CameraCommand) {
	s.pending = append(s.pending, cmd)
}

func (s *CameraSystem) Priority() int {
	return parameter.SystemPriorityCamera
}

func (s *CameraSystem) Update(store *engine.Store, dt time.Duration) {
	if len(s.pending) == 0 {
		return
	}
	cam, ok := engine.GetComponent[components.Camera](store, s.camera)
	if !ok {
		s.pending = s.pending[:0]
		return
	}

	for _, cmd := range s.pending {
		switch cmd {
		case CameraOrbitLeft:
			cam.Yaw -= parameter.CameraOrbitStepRad
		case CameraOrbitRight:
			cam.Yaw += parameter.CameraOrbitStepRad
		case CameraOrbitUp:
			cam.Pitch += parameter.CameraOrbitStepRad
		case CameraOrbitDown:
			cam.Pitch -= parameter.CameraOrbitStepRad
		case CameraZoomIn:
			cam.Distance /= parameter.CameraZoomFactor
		case CameraZoomOut:
			cam.Distance *= parameter.CameraZoomFactor
		case CameraReset:
			cam.Yaw = s.homeYaw
			cam.Pitch = s.homePitch
			cam.Distance = s.homeDistance
		}
	}
	s.pending = s.pending[:0]

	if cam.Pitch > parameter.CameraMaxPitchRad {
		cam.Pitch = parameter.CameraMaxPitchRad
	}
	if cam.Pitch < -parameter.CameraMaxPitchRad {
		cam.Pitch = -parameter.CameraMaxPitchRad
	}
	if cam.Distance < parameter.CameraMinDistanceKM {
		cam.Distance = parameter.CameraMinDistanceKM
	}
	if cam.Distance > parameter.CameraMaxDistanceKM {
		cam.Distance = parameter.CameraMaxDistanceKM
	}
}
