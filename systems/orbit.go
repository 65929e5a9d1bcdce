package systems

import (
	"math"
	"time"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/parameter"
	"github.com/shanebenlolo/hypersphere/vmath"
)

// OrbitSystem advances every orbiting body along its tilted circular
// path and writes the result into the body's transform. It stands in
// for an ephemeris feed: the scene asks only for a believable position
// per frame
type OrbitSystem struct{}

func NewOrbitSystem() *OrbitSystem {
	return &OrbitSystem{}
}

func (s *OrbitSystem) Priority() int {
	return parameter.SystemPriorityOrbit
}

func (s *OrbitSystem) Update(store *engine.Store, dt time.Duration) {
	for _, e := range engine.QueryWith[components.Orbit, components.Transform](store) {
		orbit, _ := engine.GetComponent[components.Orbit](store, e)
		tr, _ := engine.GetComponent[components.Transform](store, e)
		if orbit.PeriodS <= 0 {
			continue
		}

		orbit.Phase = math.Mod(orbit.Phase+dt.Seconds()/orbit.PeriodS*2*math.Pi, 2*math.Pi)
		tr.Position = OrbitPosition(orbit)
	}
}

// OrbitPosition resolves an orbit's current world position: a circle
// in the equatorial plane leaned over by the orbit tilt
func OrbitPosition(orbit *components.Orbit) vmath.Vec3F {
	p := vmath.Vec3F{
		X: orbit.RadiusKM * math.Cos(orbit.Phase),
		Z: orbit.RadiusKM * math.Sin(orbit.Phase),
	}
	return vmath.V3FRotateZ(p, orbit.TiltRad)
}
