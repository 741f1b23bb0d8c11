package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length, trades latency for underrun safety
	AudioBufferDuration = 50 * time.Millisecond

	// MinTickGap throttles rotation ticks so five reels do not saturate the mixer
	MinTickGap = 25 * time.Millisecond
)

// Tick Sound (one per rotation)
const (
	TickSoundDuration  = 12 * time.Millisecond
	TickSoundFrequency = 1800.0
	TickSoundAttack    = 1 * time.Millisecond
	TickSoundRelease   = 8 * time.Millisecond
)

// Thunk Sound (reel landed)
const (
	ThunkSoundDuration  = 140 * time.Millisecond
	ThunkSoundFrequency = 110.0
	ThunkSoundDecay     = 30.0
)

// Chime Sound (spin complete)
const (
	ChimeNoteDuration = 90 * time.Millisecond
	ChimeNoteAttack   = 4 * time.Millisecond
	ChimeNoteRelease  = 60 * time.Millisecond
)

// ChimeNotes is the rising arpeggio played when every reel has landed (C6 E6 G6 C7)
var ChimeNotes = []float64{1046.50, 1318.51, 1567.98, 2093.00}
