package engine

import (
	"github.com/lixenwraith/reel-spin/events"
)

// landedTracker records which reels reached their target in the current session
// Runs on the frame goroutine only, during event dispatch
type landedTracker struct {
	landed  []bool
	session string
}

func newLandedTracker(reels int) *landedTracker {
	return &landedTracker{landed: make([]bool, reels)}
}

// EventTypes implements events.Handler
func (t *landedTracker) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSpinStarted,
		events.EventReelLanded,
		events.EventSpinCompleted,
	}
}

// HandleEvent implements events.Handler
func (t *landedTracker) HandleEvent(ev events.SpinEvent) {
	switch ev.Type {
	case events.EventSpinStarted:
		if p, ok := ev.Payload.(*events.SpinPayload); ok {
			t.session = p.SessionID
		}
		clear(t.landed)

	case events.EventReelLanded:
		p, ok := ev.Payload.(*events.ReelPayload)
		if !ok || p.SessionID != t.session || p.Reel < 0 || p.Reel >= len(t.landed) {
			return
		}
		t.landed[p.Reel] = true

	case events.EventSpinCompleted:
		// Every reel has landed once the session completes, even if a landed event was dropped
		if p, ok := ev.Payload.(*events.SpinPayload); ok && p.SessionID == t.session {
			for i := range t.landed {
				t.landed[i] = true
			}
		}
	}
}

// Snapshot returns a copy safe to hand to renderers
func (t *landedTracker) Snapshot() []bool {
	return append([]bool(nil), t.landed...)
}
