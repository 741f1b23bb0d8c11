package events

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/reel-spin/constants"
)

// EventQueue buffers spin events between the reel tasks and the frame loop
//
// Consecutive rotations of one reel collapse into a single EventReelRotated whose
// ReelPayload.Steps counts them, so a stalled frame holds one pending rotation per reel
// instead of one per step. Any other event touching that reel, or any lifecycle event,
// closes the open rotation so per-reel order is preserved.
//
// Overflow: the oldest pending event is dropped and counted
type EventQueue struct {
	mu       sync.Mutex
	pending  []SpinEvent
	open     map[int]int // reel -> index in pending of its mergeable rotation
	capacity int
	dropped  *atomic.Int64
}

// NewEventQueue creates a queue; dropped, if non-nil, is incremented per overflowed event
func NewEventQueue(dropped *atomic.Int64) *EventQueue {
	return &EventQueue{
		pending:  make([]SpinEvent, 0, constants.EventQueueSize),
		open:     make(map[int]int),
		capacity: constants.EventQueueSize,
		dropped:  dropped,
	}
}

// Push implements Publisher. Safe for concurrent producers
func (q *EventQueue) Push(event SpinEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	reel, hasReel := reelOf(event)
	if !hasReel {
		clear(q.open)
	} else if event.Type != EventReelRotated {
		delete(q.open, reel)
	} else if q.merge(reel, event) {
		return
	}

	if len(q.pending) >= q.capacity {
		q.dropOldest()
	}

	q.pending = append(q.pending, event)
	if hasReel && event.Type == EventReelRotated {
		q.open[reel] = len(q.pending) - 1
	}
}

// merge folds a rotation into the reel's open rotation of the same session
func (q *EventQueue) merge(reel int, event SpinEvent) bool {
	i, ok := q.open[reel]
	if !ok {
		return false
	}
	prev, ok1 := q.pending[i].Payload.(*ReelPayload)
	next, ok2 := event.Payload.(*ReelPayload)
	if !ok1 || !ok2 || prev.SessionID != next.SessionID {
		return false
	}

	merged := *next
	merged.Steps = prev.StepCount() + next.StepCount()
	event.Payload = &merged
	q.pending[i] = event
	return true
}

func (q *EventQueue) dropOldest() {
	copy(q.pending, q.pending[1:])
	q.pending = q.pending[:len(q.pending)-1]

	for reel, i := range q.open {
		if i == 0 {
			delete(q.open, reel)
		} else {
			q.open[reel] = i - 1
		}
	}

	if q.dropped != nil {
		q.dropped.Add(1)
	}
}

// Consume returns all pending events in push order and empties the queue
// Single consumer (frame loop)
func (q *EventQueue) Consume() []SpinEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = make([]SpinEvent, 0, constants.EventQueueSize)
	clear(q.open)
	return out
}

// reelOf returns the reel index carried by per-reel payloads
func reelOf(event SpinEvent) (int, bool) {
	switch p := event.Payload.(type) {
	case *ReelPayload:
		return p.Reel, true
	case *LandingPayload:
		return p.Reel, true
	}
	return 0, false
}
