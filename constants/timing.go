package constants

import "time"

// Frame Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// EventQueueDepth bounds the terminal event channel
	EventQueueDepth = 100
)
