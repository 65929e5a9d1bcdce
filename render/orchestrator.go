package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline over one terminal
// screen: it snapshots the camera into the frame's view, runs every
// registered renderer in priority order, then flushes once
type Orchestrator struct {
	screen    tcell.Screen
	frame     *Frame
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing to screen at the
// given dimensions
func NewOrchestrator(screen tcell.Screen, width, height int) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		frame:     NewFrame(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted
// order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the terminal
func (o *Orchestrator) Resize(width, height int) {
	o.frame.Resize(width, height)
	o.screen.Sync()
}

// Frame exposes the frame buffer, mainly for tests
func (o *Orchestrator) Frame() *Frame {
	return o.frame
}

// RenderFrame executes the render pipeline: snapshot the camera view,
// clear, render all, flush, show
func (o *Orchestrator) RenderFrame(ctx RenderContext) {
	o.frame.Clear()

	if cam, ok := engine.GetComponent[components.Camera](ctx.Store, ctx.Camera); ok {
		o.frame.View = View{
			Target:   cam.Target,
			Yaw:      cam.Yaw,
			Pitch:    cam.Pitch,
			Distance: cam.Distance,
			Focal:    cam.Focal,
			W:        o.frame.W,
			H:        o.frame.ViewH,
		}
	}

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.frame)
	}

	o.frame.Flush(o.screen)
	o.screen.Show()
}
