// Package audio plays the game's tones through the system speaker using beep.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-simon/internal/games/simon"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneGain     = 0.3
	chordGain    = 0.25
	chordLength  = 800 * time.Millisecond
	bufferLength = 50 * time.Millisecond
)

// Speaker implements simon.Audio on the default output device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker initializes the output device. Without a usable device it
// returns an error and callers fall back to Silent.
func NewSpeaker() (*Speaker, error) {
	s := &Speaker{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return nil, err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// PlayTone plays the note of sig for d.
func (s *Speaker) PlayTone(sig simon.Signal, d time.Duration) {
	s.play(NewToneGenerator(sampleRate, d, toneGain, NoteFreq(sig.Note())))
}

// PlayGameOver plays the four-note game-over chord.
func (s *Speaker) PlayGameOver() {
	freqs := make([]float64, 0, len(simon.GameOverChord))
	for _, n := range simon.GameOverChord {
		freqs = append(freqs, NoteFreq(n))
	}
	s.play(NewToneGenerator(sampleRate, chordLength, chordGain, freqs...))
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Silent implements simon.Audio without output, for --mute and headless hosts.
type Silent = simon.NopAudio

var _ simon.Audio = (*Speaker)(nil)
