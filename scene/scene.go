// Package scene constructs the demo's entity population. Build is the
// only way entities enter the store: there are no package-level
// singletons, callers hold the returned handles
package scene

import (
	"fmt"
	"math"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/constants"
	"github.com/shanebenlolo/hypersphere/core"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/mesh"
	"github.com/shanebenlolo/hypersphere/parameter"
	"github.com/shanebenlolo/hypersphere/vmath"
)

// Config tunes scene construction
type Config struct {
	// Detail scales tessellation density; 1.0 is the default mesh,
	// values at or below zero fall back to it
	Detail float64
}

// Scene holds the entity handles construction produced. Renderers and
// systems take the handles they need; nothing reaches for globals
type Scene struct {
	Camera engine.Entity
	Earth  engine.Entity
	Moon   engine.Entity
}

// Build populates an empty store with the camera, Earth, and Moon
// entities and returns their handles
func Build(store *engine.Store, cfg Config) (*Scene, error) {
	detail := cfg.Detail
	if detail <= 0 {
		detail = 1.0
	}

	camera, err := buildCamera(store)
	if err != nil {
		return nil, fmt.Errorf("build camera: %w", err)
	}
	earth, err := buildEarth(store, detail)
	if err != nil {
		return nil, fmt.Errorf("build earth: %w", err)
	}
	moon, err := buildMoon(store, detail)
	if err != nil {
		return nil, fmt.Errorf("build moon: %w", err)
	}

	return &Scene{Camera: camera, Earth: earth, Moon: moon}, nil
}

func buildCamera(store *engine.Store) (engine.Entity, error) {
	b := store.Spawn()
	engine.With(b, components.Camera{
		Target:   vmath.Vec3F{},
		Distance: parameter.CameraInitialDistanceKM,
		Focal:    parameter.CameraFocalLength,
	})
	return b.Build()
}

func buildEarth(store *engine.Store, detail float64) (engine.Entity, error) {
	m, err := sphereMesh(constants.EarthRadiusEquatorKM,
		parameter.EarthSectorsDefault, parameter.EarthStacksDefault, detail)
	if err != nil {
		return 0, err
	}

	tilt := constants.EarthAxialTiltDeg * math.Pi / 180

	b := store.Spawn()
	engine.With(b, m)
	engine.With(b, components.Body{Name: "earth", RadiusKM: constants.EarthRadiusEquatorKM})
	engine.With(b, components.Material{
		Base:      core.RGB{R: 30, G: 105, B: 160},
		Ambient:   0.18,
		Diffuse:   0.85,
		Specular:  0.35,
		Shininess: 18,
		Rim:       0.25,
		PolarCap:  0.8,
		Graticule: 0.35,
	})
	engine.With(b, components.RenderPipeline{Kind: components.PipelineGlobe})
	engine.With(b, components.Transform{TiltRad: tilt})
	engine.With(b, components.Spin{RateRadS: 2 * math.Pi / parameter.EarthSpinPeriodS})
	return b.Build()
}

func buildMoon(store *engine.Store, detail float64) (engine.Entity, error) {
	m, err := sphereMesh(constants.MoonRadiusKM,
		parameter.MoonSectorsDefault, parameter.MoonStacksDefault, detail)
	if err != nil {
		return 0, err
	}

	tilt := constants.EarthAxialTiltDeg * math.Pi / 180
	orbit := components.Orbit{
		RadiusKM: parameter.MoonDisplayOrbitKM,
		PeriodS:  parameter.MoonOrbitPeriodS,
		TiltRad:  tilt,
	}

	// Start on the orbit rather than at the origin so the first frame
	// draws before the orbit system has run
	start := vmath.V3FRotateZ(vmath.Vec3F{X: orbit.RadiusKM}, orbit.TiltRad)

	b := store.Spawn()
	engine.With(b, m)
	engine.With(b, components.Body{Name: "moon", RadiusKM: constants.MoonRadiusKM})
	engine.With(b, components.Material{
		Base:      core.RGB{R: 168, G: 165, B: 158},
		Ambient:   0.1,
		Diffuse:   0.95,
		Specular:  0.05,
		Shininess: 4,
		Rim:       0.1,
	})
	engine.With(b, components.RenderPipeline{Kind: components.PipelineGlobe})
	engine.With(b, components.Transform{Position: start})
	engine.With(b, orbit)
	return b.Build()
}

// sphereMesh tessellates a body at the configured detail, holding the
// density above the tessellator's floor
func sphereMesh(radius float64, sectors, stacks int, detail float64) (components.Mesh, error) {
	s := int(float64(sectors) * detail)
	if s < 3 {
		s = 3
	}
	k := int(float64(stacks) * detail)
	if k < 2 {
		k = 2
	}
	return mesh.Sphere(radius, s, k)
}
