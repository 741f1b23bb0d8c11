package events

import (
	"time"
)

// EventType represents the type of spin event
type EventType int

const (
	// EventSpinStarted signals a new spin session
	// Trigger: Choreographer accepted a spin request
	// Consumer: AudioHandler | Payload: *SpinPayload
	EventSpinStarted EventType = iota

	// EventSpinRejected signals a spin request ignored because a session is in flight
	// Trigger: Choreographer re-entrancy guard | Payload: nil
	EventSpinRejected

	// EventReelRotated signals a single reel rotation during any phase
	// Trigger: Reel task after RotateOnce
	// Consumer: AudioHandler (tick) | Payload: *ReelPayload
	EventReelRotated

	// EventReelLanding signals the end of the stagger wait and the start of the landing phase
	// Trigger: Reel task | Payload: *LandingPayload
	EventReelLanding

	// EventReelLanded signals a reel stopped on its target
	// Trigger: Reel task
	// Consumer: AudioHandler (thunk) | Payload: *ReelPayload
	EventReelLanded

	// EventSpinCompleted signals every reel landed and the session joined
	// Trigger: Choreographer after join
	// Consumer: AudioHandler (chime) | Payload: *SpinPayload
	EventSpinCompleted
)

var eventNames = [...]string{
	EventSpinStarted:   "spin_started",
	EventSpinRejected:  "spin_rejected",
	EventReelRotated:   "reel_rotated",
	EventReelLanding:   "reel_landing",
	EventReelLanded:    "reel_landed",
	EventSpinCompleted: "spin_completed",
}

// String returns the snake_case event name used in logs
func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// SpinEvent represents a single spin event with metadata
type SpinEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// Publisher accepts events from any goroutine
type Publisher interface {
	Push(event SpinEvent)
}

// PublisherFunc adapts a function to Publisher
type PublisherFunc func(event SpinEvent)

// Push calls f(event)
func (f PublisherFunc) Push(event SpinEvent) {
	f(event)
}

// Discard is a Publisher that drops every event
var Discard Publisher = PublisherFunc(func(SpinEvent) {})
