package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Attack and release of every tone, so notes start and stop without clicks.
const (
	toneAttack  = 10 * time.Millisecond
	toneRelease = 60 * time.Millisecond
)

// NoteFreq returns the frequency in Hz of a MIDI note (A4 = 69 = 440Hz).
func NoteFreq(midi int) float64 {
	if midi <= 0 || midi >= 128 {
		return 0
	}
	return 440.0 * math.Pow(2, (float64(midi)-69.0)/12.0)
}

// ToneGenerator streams a fixed-length sum of sine waves with an
// attack/release envelope. It stops after its duration.
type ToneGenerator struct {
	sr      beep.SampleRate
	freqs   []float64
	gain    float64
	pos     int
	total   int
	attack  int
	release int
}

// NewToneGenerator creates a generator playing freqs together for d.
func NewToneGenerator(sr beep.SampleRate, d time.Duration, gain float64, freqs ...float64) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freqs:   freqs,
		gain:    gain,
		total:   sr.N(d),
		attack:  sr.N(toneAttack),
		release: sr.N(toneRelease),
	}
}

// Stream implements beep.Streamer.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		for _, f := range g.freqs {
			sample += math.Sin(2 * math.Pi * f * t)
		}
		if len(g.freqs) > 0 {
			sample /= float64(len(g.freqs))
		}
		sample *= g.gain * g.envelope()

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *ToneGenerator) Err() error {
	return nil
}

func (g *ToneGenerator) envelope() float64 {
	switch {
	case g.attack > 0 && g.pos < g.attack:
		return float64(g.pos) / float64(g.attack)
	case g.release > 0 && g.pos >= g.total-g.release:
		return math.Max(0, float64(g.total-g.pos)/float64(g.release))
	default:
		return 1.0
	}
}
