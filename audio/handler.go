package audio

import (
	"github.com/lixenwraith/reel-spin/events"
)

// Player plays a sound effect; SoundManager is the speaker-backed implementation
type Player interface {
	Play(soundType SoundType) bool
}

// Handler maps spin events to sounds
type Handler struct {
	player Player
}

// NewHandler creates an event handler playing through p
func NewHandler(p Player) *Handler {
	return &Handler{player: p}
}

// EventTypes implements events.Handler
func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventReelRotated,
		events.EventReelLanded,
		events.EventSpinCompleted,
	}
}

// HandleEvent implements events.Handler
func (h *Handler) HandleEvent(ev events.SpinEvent) {
	switch ev.Type {
	case events.EventReelRotated:
		h.player.Play(SoundTick)
	case events.EventReelLanded:
		h.player.Play(SoundThunk)
	case events.EventSpinCompleted:
		h.player.Play(SoundChime)
	}
}
