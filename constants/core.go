package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the pending event capacity between two frames
	// Rotations coalesce per reel, so a frame normally holds a few events per reel
	EventQueueSize = 256
)
