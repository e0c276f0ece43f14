// Package audio plays the short tones that accompany eating and dying.
package audio

import (
	"time"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Cue names a sound
type Cue int

const (
	CueEat Cue = iota
	CueGameOver
)

type tone struct {
	freq     float64
	duration time.Duration
}

var cues = map[Cue]tone{
	CueEat:      {freq: 880, duration: 60 * time.Millisecond},
	CueGameOver: {freq: 220, duration: 400 * time.Millisecond},
}

const sampleRate = beep.SampleRate(44100)

// Player plays cues without blocking the caller
type Player interface {
	Play(c Cue)
	Close()
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// BeepPlayer plays cues through the system speaker
type BeepPlayer struct {
	rate beep.SampleRate
}

// NewBeepPlayer initialises the speaker. Callers fall back to Silent on error.
func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	return &BeepPlayer{rate: sampleRate}, nil
}

// Open returns a speaker-backed player, or Silent when muted or when the
// speaker cannot be opened.
func Open(mute bool) Player {
	if mute {
		return Silent{}
	}
	p, err := NewBeepPlayer()
	if err != nil {
		// Non-fatal, game can run without sound
		glog.Warningf("Audio disabled: %v", err)
		return Silent{}
	}
	return p
}

func (p *BeepPlayer) Play(c Cue) {
	s, err := cueStreamer(p.rate, c)
	if err != nil {
		glog.Warningf("Skipping cue %d: %v", c, err)
		return
	}
	speaker.Play(s)
}

func (p *BeepPlayer) Close() {
	speaker.Close()
}

func cueStreamer(rate beep.SampleRate, c Cue) (beep.Streamer, error) {
	t, ok := cues[c]
	if !ok {
		return nil, errors.Errorf("unknown cue %d", c)
	}
	sine, err := generators.SineTone(rate, t.freq)
	if err != nil {
		return nil, errors.Wrapf(err, "tone %.0fHz", t.freq)
	}
	quiet := &effects.Volume{
		Streamer: sine,
		Base:     2,
		Volume:   -2,
	}
	return beep.Take(rate.N(t.duration), quiet), nil
}
