package constants

import "time"

// Reel Strip Defaults
var (
	// DefaultDigits is the initial ordering of every reel strip, front first
	DefaultDigits = []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}

	// DefaultTargets are the winning digits, one per reel in left-to-right order
	DefaultTargets = []int{8, 5, 2, 4, 1}
)

// Reel Layout
const (
	// DefaultReelCount is the number of reels on the machine
	DefaultReelCount = 5
)

// Spin Choreography Timing
const (
	// BlindRotations is the number of target-independent rotations at spin start
	BlindRotations = 20

	// RotationInterval is the cadence of a single blind rotation
	RotationInterval = 50 * time.Millisecond

	// StaggerInterval is the extra stop delay added per reel index
	StaggerInterval = 200 * time.Millisecond
)
