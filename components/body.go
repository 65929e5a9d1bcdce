package components

// Body carries the analytic shape of a sphere entity: the renderer
// shades the body from its radius while the Mesh component holds the
// tessellated geometry a polygon pipeline would consume
type Body struct {
	Name     string
	RadiusKM float64
}
