// Package tui provides the Bubble Tea integration for Simon.
// It hosts the game loop, turns engine timers into Bubble Tea commands and
// renders the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/games/simon"
)

// timerFiredMsg is delivered to Update when a scheduled timer expires.
type timerFiredMsg struct {
	timer *loopTimer
}

// loopTimer is a simon.Timer whose callback runs inside Update.
// Both Stop and the callback run on the Bubble Tea loop, so the flags need
// no locking.
type loopTimer struct {
	timer *time.Timer
	done  chan struct{}
	fire  func() error
	state timerState
}

type timerState int

const (
	timerPending timerState = iota
	timerStopped
	timerFired
)

// Stop cancels the timer. An expiry already queued as a message is dropped
// when it reaches Update.
func (t *loopTimer) Stop() bool {
	if t.state != timerPending {
		return false
	}
	t.state = timerStopped
	t.timer.Stop()
	close(t.done)
	return true
}

// run executes the callback unless the timer was stopped in the meantime.
func (t *loopTimer) run() error {
	if t.state != timerPending {
		return nil
	}
	t.state = timerFired
	return t.fire()
}

// loopScheduler implements simon.Scheduler on top of Bubble Tea commands.
// Timers created while handling a message are collected and returned as a
// batch from Update.
type loopScheduler struct {
	pending []tea.Cmd
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{}
}

// After schedules fire to run on the loop after d.
func (s *loopScheduler) After(d time.Duration, fire func() error) simon.Timer {
	t := &loopTimer{
		timer: time.NewTimer(d),
		done:  make(chan struct{}),
		fire:  fire,
	}
	s.pending = append(s.pending, func() tea.Msg {
		select {
		case <-t.timer.C:
			return timerFiredMsg{timer: t}
		case <-t.done:
			return nil
		}
	})
	return t
}

// drain returns the commands for every timer scheduled since the last call.
func (s *loopScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

var _ simon.Scheduler = (*loopScheduler)(nil)
