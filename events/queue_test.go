package events

import (
	"sync"
	"sync/atomic"
	"testing"
)

func rotated(session string, reel, front int) SpinEvent {
	return SpinEvent{Type: EventReelRotated, Payload: &ReelPayload{SessionID: session, Reel: reel, Front: front, Steps: 1}}
}

func TestEventQueuePushConsumeFIFO(t *testing.T) {
	eq := NewEventQueue(nil)

	eq.Push(SpinEvent{Type: EventSpinStarted})
	for i := 0; i < 3; i++ {
		eq.Push(SpinEvent{Type: EventReelLanded, Payload: &ReelPayload{Reel: i}})
	}
	eq.Push(SpinEvent{Type: EventSpinCompleted})

	got := eq.Consume()
	want := []EventType{EventSpinStarted, EventReelLanded, EventReelLanded, EventReelLanded, EventSpinCompleted}
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(got))
	}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("Event %d = %v, want %v", i, ev.Type, want[i])
		}
	}
	for i := 1; i <= 3; i++ {
		if p := got[i].Payload.(*ReelPayload); p.Reel != i-1 {
			t.Errorf("Landed event %d out of order: reel %d", i, p.Reel)
		}
	}

	if again := eq.Consume(); again != nil {
		t.Errorf("Expected empty queue after consume, got %d events", len(again))
	}
}

func TestEventQueueCoalescesRotations(t *testing.T) {
	eq := NewEventQueue(nil)

	for i := 0; i < 20; i++ {
		eq.Push(rotated("s1", 0, i))
		eq.Push(rotated("s1", 1, 100+i))
	}

	got := eq.Consume()
	if len(got) != 2 {
		t.Fatalf("Expected one rotation event per reel, got %d", len(got))
	}
	for _, ev := range got {
		p := ev.Payload.(*ReelPayload)
		if p.Steps != 20 {
			t.Errorf("Reel %d: expected 20 folded steps, got %d", p.Reel, p.Steps)
		}
	}
	if front := got[0].Payload.(*ReelPayload).Front; front != 19 {
		t.Errorf("Merged rotation should carry the latest front, got %d", front)
	}
}

func TestEventQueueKeepsPerReelOrder(t *testing.T) {
	eq := NewEventQueue(nil)

	eq.Push(rotated("s1", 0, 1))
	eq.Push(rotated("s1", 0, 2))
	eq.Push(SpinEvent{Type: EventReelLanding, Payload: &LandingPayload{SessionID: "s1", Reel: 0}})
	eq.Push(rotated("s1", 0, 3))
	eq.Push(SpinEvent{Type: EventReelLanded, Payload: &ReelPayload{SessionID: "s1", Reel: 0, Front: 3}})
	eq.Push(SpinEvent{Type: EventSpinCompleted, Payload: &SpinPayload{SessionID: "s1"}})
	eq.Push(rotated("s2", 0, 4))

	got := eq.Consume()
	want := []EventType{EventReelRotated, EventReelLanding, EventReelRotated, EventReelLanded, EventSpinCompleted, EventReelRotated}
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(got))
	}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("Event %d = %v, want %v", i, ev.Type, want[i])
		}
	}
	if steps := got[0].Payload.(*ReelPayload).Steps; steps != 2 {
		t.Errorf("Blind rotations should fold to 2 steps, got %d", steps)
	}
	if steps := got[2].Payload.(*ReelPayload).Steps; steps != 1 {
		t.Errorf("Rotation after landing must not merge backwards, got %d steps", steps)
	}
}

func TestEventQueueSessionBoundary(t *testing.T) {
	eq := NewEventQueue(nil)

	eq.Push(rotated("s1", 2, 0))
	eq.Push(rotated("s2", 2, 1))

	if got := eq.Consume(); len(got) != 2 {
		t.Errorf("Rotations of different sessions must not merge, got %d events", len(got))
	}
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	var dropped atomic.Int64
	eq := NewEventQueue(&dropped)
	eq.capacity = 4

	for i := 0; i < 6; i++ {
		eq.Push(SpinEvent{Type: EventReelLanded, Payload: &ReelPayload{Reel: i}})
	}

	got := eq.Consume()
	if len(got) != 4 {
		t.Fatalf("Expected 4 events after overflow, got %d", len(got))
	}
	if first := got[0].Payload.(*ReelPayload).Reel; first != 2 {
		t.Errorf("Expected oldest surviving event 2, got %d", first)
	}
	if dropped.Load() != 2 {
		t.Errorf("Expected 2 dropped events, got %d", dropped.Load())
	}
}

func TestEventQueueOverflowShiftsOpenRotation(t *testing.T) {
	eq := NewEventQueue(nil)
	eq.capacity = 2

	eq.Push(rotated("s1", 0, 0))
	eq.Push(SpinEvent{Type: EventReelLanded, Payload: &ReelPayload{SessionID: "s1", Reel: 1}})
	eq.Push(rotated("s1", 2, 0)) // drops reel 0 rotation
	eq.Push(rotated("s1", 2, 1)) // merges into reel 2 at its shifted index

	got := eq.Consume()
	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}
	if p := got[1].Payload.(*ReelPayload); p.Reel != 2 || p.Steps != 2 {
		t.Errorf("Expected reel 2 with 2 steps, got reel %d steps %d", p.Reel, p.Steps)
	}
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	eq := NewEventQueue(nil)
	const producers = 5
	const perProducer = 30

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(reel int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				eq.Push(rotated("s1", reel, i))
			}
			eq.Push(SpinEvent{Type: EventReelLanded, Payload: &ReelPayload{SessionID: "s1", Reel: reel, Front: perProducer}})
		}(p)
	}
	wg.Wait()

	steps := make([]int, producers)
	landed := make([]bool, producers)
	for _, ev := range eq.Consume() {
		p := ev.Payload.(*ReelPayload)
		switch ev.Type {
		case EventReelRotated:
			if landed[p.Reel] {
				t.Fatalf("Reel %d rotation delivered after its landing", p.Reel)
			}
			steps[p.Reel] += p.StepCount()
		case EventReelLanded:
			landed[p.Reel] = true
		}
	}
	for reel, n := range steps {
		if n != perProducer || !landed[reel] {
			t.Errorf("Reel %d: %d steps landed=%v, want %d steps landed", reel, n, landed[reel], perProducer)
		}
	}
}

func TestReelPayloadStepCount(t *testing.T) {
	if (&ReelPayload{}).StepCount() != 1 {
		t.Error("Zero steps should count as one rotation")
	}
	if (&ReelPayload{Steps: 7}).StepCount() != 7 {
		t.Error("Explicit steps should be returned unchanged")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		et   EventType
		want string
	}{
		{EventSpinStarted, "spin_started"},
		{EventReelLanded, "reel_landed"},
		{EventSpinCompleted, "spin_completed"},
		{EventType(99), "unknown"},
		{EventType(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}
