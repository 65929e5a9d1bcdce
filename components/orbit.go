package components

// Orbit drives a body on a circular path around the world origin,
// tilted off the equatorial plane. Phase is the current angle; the
// orbit system advances it by 2pi per period
type Orbit struct {
	RadiusKM float64
	PeriodS  float64
	TiltRad  float64
	Phase    float64
}
