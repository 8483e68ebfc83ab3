package simon

import (
	"time"

	"github.com/vovakirdan/tui-simon/internal/config"
)

// Sequencer turns elapsed time during Playing into FinishedShowingSection
// actions and tone cues. It holds at most one timer, always for the most
// recently observed Playing state.
type Sequencer struct {
	sched    Scheduler
	audio    Audio
	dispatch func(Action) error
	settings config.Settings
	timer    Timer
}

// NewSequencer creates an idle sequencer.
func NewSequencer(sched Scheduler, audio Audio, settings config.Settings, dispatch func(Action) error) *Sequencer {
	return &Sequencer{
		sched:    sched,
		audio:    audio,
		dispatch: dispatch,
		settings: settings,
	}
}

// SetSettings replaces the durations used for phases scheduled from now on.
func (q *Sequencer) SetSettings(s config.Settings) {
	q.settings = s
}

// Observe must be called with every new state. Any pending timer is cancelled
// and, if s is Playing, a new one is scheduled for its phase.
func (q *Sequencer) Observe(s State) {
	q.Stop()

	st, ok := s.(Playing)
	if !ok {
		return
	}
	q.timer = q.sched.After(q.phaseDuration(st), func() error {
		return q.expire(st)
	})
}

// Pending reports whether a phase timer is outstanding.
func (q *Sequencer) Pending() bool {
	return q.timer != nil
}

// Stop cancels the pending timer, if any.
func (q *Sequencer) Stop() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

func (q *Sequencer) phaseDuration(st Playing) time.Duration {
	switch {
	case !st.Gap:
		return q.settings.Show()
	case st.Index == 0:
		return q.settings.FirstGap()
	default:
		return q.settings.Gap()
	}
}

// expire ends the phase st was scheduled for. The cue for a signal fires as
// its gap ends, so the show phase itself expires silently.
func (q *Sequencer) expire(st Playing) error {
	q.timer = nil
	if st.Gap {
		q.audio.PlayTone(st.Pattern[st.Index], q.settings.Show())
	}
	return q.dispatch(FinishedShowingSection{})
}
