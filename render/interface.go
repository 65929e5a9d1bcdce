package render

import (
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/geo"
)

// RenderContext carries the per-frame state renderers read. Entity
// handles come from scene construction; nothing here is process-global
type RenderContext struct {
	Store       *engine.Store
	Camera      engine.Entity
	Earth       engine.Entity
	FPS         float64
	FrameNumber int64

	// LastMark is the most recently placed marker coordinate, nil
	// before the first placement
	LastMark *geo.LatLon
}

// SystemRenderer is implemented by systems with visual output
type SystemRenderer interface {
	Name() string
	Render(ctx RenderContext, f *Frame)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
