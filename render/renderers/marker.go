package renderers

import (
	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/constants"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/geo"
	"github.com/shanebenlolo/hypersphere/render"
)

// MarkerRenderer draws billboard-pipeline entities as camera-facing
// glyphs pinned to their surface coordinate. Anchors ride the globe's
// transform, and the frame depth buffer hides markers that rotate onto
// the far side
type MarkerRenderer struct{}

func NewMarkerRenderer() *MarkerRenderer {
	return &MarkerRenderer{}
}

func (r *MarkerRenderer) Name() string {
	return "markers"
}

func (r *MarkerRenderer) Render(ctx render.RenderContext, f *render.Frame) {
	tr, ok := engine.GetComponent[components.Transform](ctx.Store, ctx.Earth)
	if !ok {
		return
	}
	body, ok := engine.GetComponent[components.Body](ctx.Store, ctx.Earth)
	if !ok {
		return
	}

	for _, e := range engine.QueryWith[components.Marker, components.RenderPipeline](ctx.Store) {
		pipe, _ := engine.GetComponent[components.RenderPipeline](ctx.Store, e)
		if pipe.Kind != components.PipelineBillboard {
			continue
		}
		m, _ := engine.GetComponent[components.Marker](ctx.Store, e)

		local := geo.LatLonToCartesian(m.LatDeg, m.LonDeg, body.RadiusKM+m.HeightKM)
		proj, ok := f.View.Project(tr.Apply(local))
		if !ok {
			continue
		}

		x := int(proj.CX)
		y := int(proj.CY)
		f.SetGlyph(x, y, proj.Depth, m.Glyph, m.Color)

		// Wide billboards get side ticks when the projected size spans
		// multiple cells
		if proj.Scale*constants.MarkerSizeKM*2 >= 3 {
			f.SetGlyph(x-1, y, proj.Depth, '[', m.Color.Scale(0.5))
			f.SetGlyph(x+1, y, proj.Depth, ']', m.Color.Scale(0.5))
		}
	}
}
