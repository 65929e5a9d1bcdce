package systems

import (
	"math"
	"time"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/parameter"
)

// SpinSystem turns spinning bodies around their own axis
type SpinSystem struct{}

func NewSpinSystem() *SpinSystem {
	return &SpinSystem{}
}

func (s *SpinSystem) Priority() int {
	return parameter.SystemPrioritySpin
}

func (s *SpinSystem) Update(store *engine.Store, dt time.Duration) {
	for _, e := range engine.QueryWith[components.Spin, components.Transform](store) {
		spin, _ := engine.GetComponent[components.Spin](store, e)
		tr, _ := engine.GetComponent[components.Transform](store, e)
		tr.SpinAngle = math.Mod(tr.SpinAngle+spin.RateRadS*dt.Seconds(), 2*math.Pi)
	}
}
