// storeprof exercises the component store's linear queries under
// pkg/profile so the scan cost can be measured against scene size.
//
// go build ./cmd/storeprof
// go tool pprof -http=":8000" -nodefraction=0.001 ./storeprof mem.pprof
package main

import (
	"flag"
	"log"
	"math"

	"github.com/pkg/profile"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/engine"
)

var (
	entitiesFlag = flag.Int("entities", 5000, "Entities to populate")
	framesFlag   = flag.Int("frames", 10000, "Simulated frames to query")
	modeFlag     = flag.String("mode", "mem", "Profile mode: mem or cpu")
)

func main() {
	flag.Parse()

	var p interface{ Stop() }
	switch *modeFlag {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	}

	matched := run(*entitiesFlag, *framesFlag)
	p.Stop()

	log.Printf("queried %d frames over %d entities, %d matches", *framesFlag, *entitiesFlag, matched)
}

// run populates a store with the demo's component mix and replays the
// render loop's queries
func run(numEntities, frames int) int {
	store := engine.NewStore()

	// Roughly the live scene's shape: a few bodies, many markers, and
	// some entities carrying nothing at all
	for i := 0; i < numEntities; i++ {
		e := store.NewEntity()
		switch {
		case i%100 == 0:
			must(engine.AddComponent(store, e, components.Transform{}))
			must(engine.AddComponent(store, e, components.Mesh{}))
			must(engine.AddComponent(store, e, components.Body{Name: "body", RadiusKM: 1000}))
			must(engine.AddComponent(store, e, components.RenderPipeline{Kind: components.PipelineGlobe}))
			must(engine.AddComponent(store, e, components.Spin{RateRadS: 0.1}))
		case i%3 != 0:
			must(engine.AddComponent(store, e, components.Marker{
				LatDeg: math.Mod(float64(i), 180) - 90,
				LonDeg: math.Mod(float64(i)*7, 360) - 180,
				Glyph:  '●',
			}))
			must(engine.AddComponent(store, e, components.RenderPipeline{Kind: components.PipelineBillboard}))
		}
	}

	matched := 0
	for f := 0; f < frames; f++ {
		matched += len(engine.QueryWith[components.Mesh, components.Transform](store))
		matched += len(engine.QueryWith[components.Marker, components.RenderPipeline](store))
		matched += len(engine.QueryWithOnly[components.Spin, components.Orbit](store))
	}
	return matched
}

func must(err error) {
	if err != nil {
		log.Fatalf("populate store: %v", err)
	}
}
