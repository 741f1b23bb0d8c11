package spin

import (
	"context"

	"github.com/looplab/fsm"
)

// Status is the spin session lifecycle state
type Status int

const (
	StatusIdle Status = iota
	StatusSpinning
	StatusComplete
)

// FSM state and event names
const (
	stateIdle     = "idle"
	stateSpinning = "spinning"
	stateComplete = "complete"

	eventSpin   = "spin"
	eventLand   = "land"
	eventSettle = "settle"
)

func (s Status) String() string {
	switch s {
	case StatusSpinning:
		return stateSpinning
	case StatusComplete:
		return stateComplete
	default:
		return stateIdle
	}
}

func parseStatus(state string) Status {
	switch state {
	case stateSpinning:
		return StatusSpinning
	case stateComplete:
		return StatusComplete
	default:
		return StatusIdle
	}
}

// newStateMachine builds idle -> spinning -> complete -> idle
// The spin event is only valid from idle, which makes the transition the re-entrancy guard
func newStateMachine(onEnter func(from, to Status)) *fsm.FSM {
	return fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: eventSpin, Src: []string{stateIdle}, Dst: stateSpinning},
			{Name: eventLand, Src: []string{stateSpinning}, Dst: stateComplete},
			{Name: eventSettle, Src: []string{stateComplete}, Dst: stateIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				onEnter(parseStatus(e.Src), parseStatus(e.Dst))
			},
		},
	)
}
