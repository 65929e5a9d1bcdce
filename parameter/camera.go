package parameter

// Orbit camera tuning
// The camera circles the globe target on a sphere of its own; yaw and
// pitch select the point on that sphere, distance sets its radius
const (
	// CameraInitialDistanceKM places the camera at startup
	CameraInitialDistanceKM = 19000.0

	// CameraMinDistanceKM stops zoom-in short of the surface
	CameraMinDistanceKM = 7500.0

	// CameraMaxDistanceKM keeps the moon orbit in frame at full zoom-out
	CameraMaxDistanceKM = 60000.0

	// CameraOrbitStepRad is the yaw/pitch increment per key press
	CameraOrbitStepRad = 0.08

	// CameraZoomFactor scales distance per zoom step
	CameraZoomFactor = 1.12

	// CameraMaxPitchRad clamps pitch short of the poles so the view
	// basis never degenerates
	CameraMaxPitchRad = 1.45

	// CameraFocalLength is the perspective projection focal length in
	// cells for a unit-depth point
	CameraFocalLength = 1.2
)
