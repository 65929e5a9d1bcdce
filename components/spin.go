package components

// Spin rotates a body around its own (tilted) axis
type Spin struct {
	RateRadS float64
}
