package components

// PipelineKind selects the drawing path for an entity
type PipelineKind int

const (
	// PipelineGlobe shades the entity as a lit sphere body
	PipelineGlobe PipelineKind = iota

	// PipelineBillboard draws the entity as a camera-facing glyph
	PipelineBillboard
)

// RenderPipeline marks an entity drawable and names its drawing path.
// Entities without one are skipped by every renderer
type RenderPipeline struct {
	Kind PipelineKind
}
