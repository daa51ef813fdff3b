// Package audio synthesizes the game's effect cues. No sample assets: every
// cue is a short generated waveform mixed into one speaker stream.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine is the beep-backed sound device. A failed speaker init leaves it
// disabled; Play becomes a no-op instead of an error path in the game loop.
type Engine struct {
	enabled bool
}

// New opens the speaker. Returns a disabled engine when no audio device is
// available (headless terminals, SSH sessions without local audio).
func New() *Engine {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return &Engine{}
	}
	return &Engine{enabled: true}
}

// Play mixes the cue for the given event into the output. Unknown events are
// ignored so the simulation can emit freely.
func (e *Engine) Play(event string) {
	if !e.enabled {
		return
	}
	c, ok := cues[event]
	if !ok {
		return
	}
	speaker.Play(c.streamer())
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}

// cue describes one synthesized effect: a start and end frequency swept over
// the duration, a waveform, and a volume in beep's exponential scale.
type cue struct {
	from, to float64 // Hz
	dur      time.Duration
	square   bool
	volume   float64
}

var cues = map[string]cue{
	"shoot":           {from: 880, to: 440, dur: 60 * time.Millisecond, square: true, volume: -2.5},
	"kill":            {from: 220, to: 520, dur: 120 * time.Millisecond, square: true, volume: -2},
	"spit":            {from: 300, to: 180, dur: 150 * time.Millisecond, volume: -2},
	"rooted":          {from: 140, to: 90, dur: 250 * time.Millisecond, volume: -1.5},
	"pickup":          {from: 520, to: 1040, dur: 140 * time.Millisecond, volume: -2},
	"lantern":         {from: 392, to: 392, dur: 180 * time.Millisecond, volume: -2},
	"flare":           {from: 600, to: 1200, dur: 200 * time.Millisecond, volume: -2},
	"lure":            {from: 660, to: 660, dur: 250 * time.Millisecond, volume: -2.5},
	"teleport_start":  {from: 200, to: 800, dur: 400 * time.Millisecond, volume: -2.5},
	"teleport":        {from: 800, to: 200, dur: 250 * time.Millisecond, volume: -2},
	"teleport_cancel": {from: 400, to: 100, dur: 120 * time.Millisecond, square: true, volume: -2},
	"shockwave":       {from: 160, to: 40, dur: 350 * time.Millisecond, square: true, volume: -1},
	"horde":           {from: 80, to: 240, dur: 900 * time.Millisecond, square: true, volume: -1},
	"level_clear":     {from: 440, to: 880, dur: 500 * time.Millisecond, volume: -1.5},
}

// streamer builds the playable stream for a cue: a frequency sweep with a
// linear fade-out, trimmed to length and volume-scaled.
func (c cue) streamer() beep.Streamer {
	n := sampleRate.N(c.dur)
	s := &sweep{from: c.from, to: c.to, total: n, square: c.square}
	return &effects.Volume{
		Streamer: beep.Take(n, s),
		Base:     2,
		Volume:   c.volume,
	}
}

// sweep generates a mono waveform gliding between two frequencies with a
// fade-out envelope.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
	square   bool
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(s.pos) / float64(s.total)
		if t > 1 {
			t = 1
		}
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(sampleRate)
		if s.phase >= 1 {
			s.phase -= 1
		}

		v := math.Sin(2 * math.Pi * s.phase)
		if s.square {
			if v >= 0 {
				v = 0.6
			} else {
				v = -0.6
			}
		}
		v *= 1 - t // fade out
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
