package renderers

import (
	"fmt"
	"math"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/core"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/geo"
	"github.com/shanebenlolo/hypersphere/render"
)

var (
	hudText = core.RGB{R: 180, G: 190, B: 200}
	hudDim  = core.RGB{R: 110, G: 118, B: 128}
	hudBack = core.RGB{R: 16, G: 20, B: 28}
)

// HUDRenderer fills the reserved bottom rows with frame stats, camera
// state, and the key map
type HUDRenderer struct {
	visible bool
}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{visible: true}
}

func (r *HUDRenderer) Name() string {
	return "hud"
}

// IsVisible implements render.VisibilityToggle
func (r *HUDRenderer) IsVisible() bool {
	return r.visible
}

// Toggle flips HUD visibility
func (r *HUDRenderer) Toggle() {
	r.visible = !r.visible
}

func (r *HUDRenderer) Render(ctx render.RenderContext, f *render.Frame) {
	markers := len(engine.QueryWith[components.Marker, components.RenderPipeline](ctx.Store))

	top := fmt.Sprintf(" hypersphere   fps %4.1f   entities %d   markers %d",
		ctx.FPS, ctx.Store.EntityCount(), markers)

	bottom := " "
	if cam, ok := engine.GetComponent[components.Camera](ctx.Store, ctx.Camera); ok {
		bottom += fmt.Sprintf("yaw %+.2f pitch %+.2f dist %.0fkm", cam.Yaw, cam.Pitch, cam.Distance)
	}
	if ctx.LastMark != nil {
		bottom += "   last " + formatLatLon(*ctx.LastMark)
	}
	bottom += "   arrows orbit  +/- zoom  click drop  h hud  q quit"

	r.writeRow(f, f.H-2, top, hudText)
	r.writeRow(f, f.H-1, bottom, hudDim)
}

// writeRow paints one full-width HUD row so stale world cells never
// show through
func (r *HUDRenderer) writeRow(f *render.Frame, y int, text string, fg core.RGB) {
	pad := f.W - len([]rune(text))
	for pad > 0 {
		text += " "
		pad--
	}
	f.WriteString(0, y, text, fg, hudBack)
}

// formatLatLon renders a coordinate in compass notation
func formatLatLon(ll geo.LatLon) string {
	ns := "N"
	if ll.LatDeg < 0 {
		ns = "S"
	}
	ew := "E"
	if ll.LonDeg < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.2f%s %.2f%s", math.Abs(ll.LatDeg), ns, math.Abs(ll.LonDeg), ew)
}
