package parameter

// System update order. Lower runs first: input-driven camera moves
// land before orbital motion, and marker placement sees settled
// transforms
const (
	SystemPriorityCamera = 10
	SystemPriorityOrbit  = 20
	SystemPrioritySpin   = 30
	SystemPriorityMarker = 40
)
