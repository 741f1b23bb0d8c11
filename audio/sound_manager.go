package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/reel-spin/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager owns the speaker and a master mixer for all reel sounds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	lastTick    time.Time

	// Clock for tick throttling
	now func() time.Time
}

// NewSoundManager creates a sound manager at the given master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: newVolume(mixer, volume),
		now:    time.Now,
	}
}

// Initialize sets up the speaker and starts the master mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues a sound effect on the master mixer, no-op without a speaker
// Returns true if the sound was queued
func (sm *SoundManager) Play(soundType SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	if soundType == SoundTick {
		now := sm.now()
		if now.Sub(sm.lastTick) < constants.MinTickGap {
			return false
		}
		sm.lastTick = now
	}

	s := GetSoundEffect(soundType, sampleRate)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}
