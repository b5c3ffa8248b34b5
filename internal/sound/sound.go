// Package sound plays short synthesized cues for jumps and game over.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player receives game events that have a sound.
type Player interface {
	Jump()
	GameOver()
	Close()
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Jump()     {}
func (Silent) GameOver() {}
func (Silent) Close()    {}

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	closed bool
}

// NewSpeaker opens the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("sound: cannot open audio device: %w", err)
	}
	return &Speaker{}, nil
}

// Jump plays a short rising blip.
func (s *Speaker) Jump() {
	s.play(jumpCue)
}

// GameOver plays a falling two-tone cue.
func (s *Speaker) GameOver() {
	s.play(gameOverCue)
}

func (s *Speaker) play(cue func(beep.SampleRate) (beep.Streamer, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	streamer, err := cue(sampleRate)
	if err != nil {
		return
	}
	speaker.Play(streamer)
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// tone returns a sine at freq for d, attenuated to a comfortable level.
func tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sound: tone %gHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   -2,
	}, nil
}

func jumpCue(rate beep.SampleRate) (beep.Streamer, error) {
	low, err := tone(rate, 660, 40*time.Millisecond)
	if err != nil {
		return nil, err
	}
	high, err := tone(rate, 990, 40*time.Millisecond)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}

func gameOverCue(rate beep.SampleRate) (beep.Streamer, error) {
	first, err := tone(rate, 440, 150*time.Millisecond)
	if err != nil {
		return nil, err
	}
	second, err := tone(rate, 220, 300*time.Millisecond)
	if err != nil {
		return nil, err
	}
	return beep.Seq(first, second), nil
}
