package events

import (
	"time"
)

// SpinPayload identifies a spin session
type SpinPayload struct {
	SessionID string
	Targets   []int
	Elapsed   time.Duration // Zero on EventSpinStarted
}

// ReelPayload carries the reel index and the digit on its payline after the event
type ReelPayload struct {
	SessionID string
	Reel      int
	Front     int
	Steps     int // Rotations folded into this event; zero reads as one
}

// StepCount returns Steps, treating zero as a single rotation
func (p *ReelPayload) StepCount() int {
	if p.Steps < 1 {
		return 1
	}
	return p.Steps
}

// LandingPayload records when a reel left the blind phase and when it began landing
// LandingStart - BlindEnd is the applied stagger wait
type LandingPayload struct {
	SessionID    string
	Reel         int
	BlindEnd     time.Time
	LandingStart time.Time
}
