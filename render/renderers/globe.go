package renderers

import (
	"math"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/core"
	"github.com/shanebenlolo/hypersphere/engine"
	"github.com/shanebenlolo/hypersphere/geo"
	"github.com/shanebenlolo/hypersphere/render"
	"github.com/shanebenlolo/hypersphere/vmath"
)

// GlobeRenderer shades every globe-pipeline entity as a lit sphere.
// Presence of Mesh and Transform makes an entity drawable; the shading
// itself runs analytically from Body radius, per cell of the projected
// disc, with the frame depth buffer resolving overlap
type GlobeRenderer struct {
	sunDir vmath.Vec3F
}

// NewGlobeRenderer creates the renderer with a fixed world-space sun
func NewGlobeRenderer() *GlobeRenderer {
	return &GlobeRenderer{
		sunDir: vmath.V3FNormalize(vmath.Vec3F{X: 1, Y: 0.35, Z: -0.5}),
	}
}

func (r *GlobeRenderer) Name() string {
	return "globe"
}

func (r *GlobeRenderer) Render(ctx render.RenderContext, f *render.Frame) {
	for _, e := range engine.QueryWith[components.Mesh, components.Transform](ctx.Store) {
		pipe, ok := engine.GetComponent[components.RenderPipeline](ctx.Store, e)
		if !ok || pipe.Kind != components.PipelineGlobe {
			continue
		}
		body, ok := engine.GetComponent[components.Body](ctx.Store, e)
		if !ok {
			continue
		}
		tr, _ := engine.GetComponent[components.Transform](ctx.Store, e)
		mat, ok := engine.GetComponent[components.Material](ctx.Store, e)
		if !ok {
			continue
		}
		r.renderBody(f, tr, body, mat)
	}
}

func (r *GlobeRenderer) renderBody(f *render.Frame, tr *components.Transform, body *components.Body, mat *components.Material) {
	view := &f.View
	proj, ok := view.Project(tr.Position)
	if !ok {
		return
	}

	// Projected disc radius in cells, vertical; horizontal doubled for
	// cell aspect
	rv := body.RadiusKM * proj.Scale
	if rv < 0.4 {
		return
	}

	minX := clampInt(int(proj.CX-rv*2-1), 0, f.W-1)
	maxX := clampInt(int(proj.CX+rv*2+1), 0, f.W-1)
	minY := clampInt(int(proj.CY-rv-1), 0, f.ViewH-1)
	maxY := clampInt(int(proj.CY+rv+1), 0, f.ViewH-1)

	// Camera forward in world space carries view-frame normals out of
	// the disc math; the sun stays in world space throughout
	toCamera := vmath.V3FNormalize(vmath.V3FSub(view.Eye(), tr.Position))
	half := vmath.V3FNormalize(vmath.V3FAdd(r.sunDir, toCamera))

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - proj.CX) / (rv * 2.0)
			ny := (float64(sy) + 0.5 - proj.CY) / rv
			distSq := nx*nx + ny*ny
			if distSq > 1.0 {
				continue
			}
			nz := math.Sqrt(1.0 - distSq)

			// Disc coords to world normal: view frame has +Y up and
			// the camera looking +Z, screen rows grow downward
			normal := vmath.Vec3F{X: nx, Y: -ny, Z: -nz}
			normal = vmath.V3FRotateX(normal, view.Pitch)
			normal = vmath.V3FRotateY(normal, view.Yaw)

			diff := vmath.V3FDot(normal, r.sunDir)
			if diff < 0 {
				diff = 0
			}
			rim := (1.0 - nz) * (1.0 - nz) * mat.Rim

			spec := vmath.V3FDot(normal, half)
			if spec < 0 {
				spec = 0
			}
			spec = math.Pow(spec, mat.Shininess) * mat.Specular

			shade := surfaceColor(mat, tr, body, normal)
			intensity := mat.Ambient + mat.Diffuse*diff + rim
			c := shade.Scale(intensity)
			c = c.Add(core.RGBWhite.Scale(spec * (0.3 + 0.7*diff)))

			depth := proj.Depth - nz*body.RadiusKM
			f.SetSurface(sx, sy, depth, c)
		}
	}
}

// surfaceColor resolves the ground color under a world normal: base
// material, whitened past the polar circles, darkened on the 30 degree
// graticule. The normal is carried back through the body transform so
// the pattern rides the body's spin
func surfaceColor(mat *components.Material, tr *components.Transform, body *components.Body, normal vmath.Vec3F) core.RGB {
	c := mat.Base
	if mat.PolarCap == 0 && mat.Graticule == 0 {
		return c
	}

	local := tr.Unapply(vmath.V3FAdd(tr.Position, vmath.V3FScale(normal, body.RadiusKM)))
	ll := geo.CartesianToLatLon(local)

	if mat.PolarCap > 0 {
		if a := math.Abs(ll.LatDeg); a > 66 {
			t := (a - 66) / 24 * mat.PolarCap
			c = core.Lerp(c, core.RGBWhite, math.Min(t, 1))
		}
	}

	if mat.Graticule > 0 {
		if onGrid(ll.LatDeg, 30, 0.7) || onGrid(ll.LonDeg, 30, 0.7) {
			c = c.Scale(1 - mat.Graticule)
		}
	}
	return c
}

// onGrid reports whether v sits within width degrees of a multiple of
// step
func onGrid(v, step, width float64) bool {
	m := math.Abs(math.Mod(v, step))
	return m < width || step-m < width
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
