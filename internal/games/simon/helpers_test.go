package simon

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-simon/internal/config"
)

// manualScheduler runs timers against a virtual clock advanced by tests.
type manualScheduler struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
	errs   []error
}

type manualTimer struct {
	at      time.Duration
	seq     int
	d       time.Duration
	fire    func() error
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) After(d time.Duration, fire func() error) Timer {
	s.seq++
	t := &manualTimer{at: s.now + d, seq: s.seq, d: d, fire: fire}
	s.timers = append(s.timers, t)
	return t
}

// pending returns live timers ordered by expiry.
func (s *manualScheduler) pending() []*manualTimer {
	var live []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].at != live[j].at {
			return live[i].at < live[j].at
		}
		return live[i].seq < live[j].seq
	})
	return live
}

// Advance moves the clock forward by d, firing due timers in order.
func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		live := s.pending()
		if len(live) == 0 || live[0].at > target {
			break
		}
		t := live[0]
		s.now = t.at
		t.fired = true
		if err := t.fire(); err != nil {
			s.errs = append(s.errs, err)
		}
	}
	s.now = target
}

// FireNext fires the earliest live timer and returns its duration.
func (s *manualScheduler) FireNext() (time.Duration, bool) {
	live := s.pending()
	if len(live) == 0 {
		return 0, false
	}
	t := live[0]
	s.Advance(t.at - s.now)
	return t.d, true
}

type toneCall struct {
	Signal Signal
	D      time.Duration
}

// recordingAudio records every cue.
type recordingAudio struct {
	tones    []toneCall
	gameOver int
}

func (a *recordingAudio) PlayTone(s Signal, d time.Duration) {
	a.tones = append(a.tones, toneCall{Signal: s, D: d})
}

func (a *recordingAudio) PlayGameOver() {
	a.gameOver++
}

func (a *recordingAudio) signals() []Signal {
	out := make([]Signal, 0, len(a.tones))
	for _, c := range a.tones {
		out = append(out, c.Signal)
	}
	return out
}

// scriptedGenerator returns the given signals in order, then repeats the last.
func scriptedGenerator(signals ...Signal) Generator {
	i := 0
	return GeneratorFunc(func() Signal {
		s := signals[min(i, len(signals)-1)]
		i++
		return s
	})
}

type memHighScores struct {
	saved []int
	err   error
}

func (m *memHighScores) SaveHighScore(score int) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, score)
	return nil
}

func testSettings() config.Settings {
	s := config.DefaultSettings()
	s.FirstGapMS = 1000
	s.GapMS = 500
	s.ShowMS = 400
	return s
}
