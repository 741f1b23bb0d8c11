package render

import (
	"github.com/lixenwraith/reel-spin/spin"
	"github.com/lixenwraith/reel-spin/status"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Width  int
	Height int
	Layout Layout

	// Status gates the spin button
	Status spin.Status

	// Windows holds, per reel, the digits around the payline; index Above is the payline
	Windows [][]int
	Above   int

	// Landed marks reels that stopped on their target in the current session
	Landed []bool

	// Targets are the winning digits of the current (or configured) request
	Targets []int

	Metrics status.Snapshot

	// FrameNumber drives the busy button animation
	FrameNumber int64
}
