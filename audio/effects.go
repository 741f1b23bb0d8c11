package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/reel-spin/constants"
)

// SoundType identifies a reel sound effect
type SoundType int

const (
	SoundTick  SoundType = iota // One reel rotation
	SoundThunk                  // Reel landed on its target
	SoundChime                  // Every reel landed
)

// envelope applies linear attack/release shaping to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// thunk is a pitch-dropping sine with exponential decay, the mechanical stop of a reel
type thunk struct {
	rate     beep.SampleRate
	freq     float64
	decay    float64
	phase    float64
	position int
	total    int
}

// NewThunk creates a finite thunk streamer
func NewThunk(freq, decay float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &thunk{rate: rate, freq: freq, decay: decay, total: rate.N(duration)}
}

func (g *thunk) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.position >= g.total {
			return i, i > 0
		}
		t := float64(g.position) / float64(g.rate)
		env := math.Exp(-t * g.decay)

		// Pitch falls to half over the envelope
		freq := g.freq * (0.5 + 0.5*env)
		val := env * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.position++
	}
	return len(samples), true
}

func (g *thunk) Err() error { return nil }

// newVolume maps a linear gain to effects.Volume
// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a finite sine at freq, shaped by attack/release
func tone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist: emit silence of the same length
		return beep.Silence(rate.N(duration))
	}
	return NewEnvelope(beep.Take(rate.N(duration), sine), duration, attack, release, rate)
}

// CreateTickSound generates the short click played on every rotation
func CreateTickSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(
		tone(constants.TickSoundFrequency, constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease, rate),
		0.25,
	)
}

// CreateThunkSound generates the landing thud
func CreateThunkSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(
		NewThunk(constants.ThunkSoundFrequency, constants.ThunkSoundDecay, constants.ThunkSoundDuration, rate),
		0.8,
	)
}

// CreateChimeSound generates the rising arpeggio played when the spin completes
func CreateChimeSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(constants.ChimeNotes))
	for _, freq := range constants.ChimeNotes {
		notes = append(notes, tone(freq, constants.ChimeNoteDuration, constants.ChimeNoteAttack, constants.ChimeNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5)
}

// GetSoundEffect returns a fresh streamer for the given sound type
func GetSoundEffect(soundType SoundType, rate beep.SampleRate) beep.Streamer {
	switch soundType {
	case SoundTick:
		return CreateTickSound(rate)
	case SoundThunk:
		return CreateThunkSound(rate)
	case SoundChime:
		return CreateChimeSound(rate)
	default:
		return nil
	}
}
