package simon

import (
	"time"

	"github.com/charmbracelet/log"
)

// GameOverDelay paces the game-over cue after the losing press.
const GameOverDelay = 500 * time.Millisecond

// ScoreTracker fires the one-shot game-over effect: it updates the high score,
// plays the chord and acknowledges with PlayedGameOverSound.
type ScoreTracker struct {
	sched    Scheduler
	audio    Audio
	store    HighScoreStore
	dispatch func(Action) error
	logger   *log.Logger

	high  int
	timer Timer
}

// NewScoreTracker creates a tracker starting from the persisted high score.
// store may be nil, in which case the high score lives only in memory.
func NewScoreTracker(sched Scheduler, audio Audio, store HighScoreStore, high int, logger *log.Logger, dispatch func(Action) error) *ScoreTracker {
	return &ScoreTracker{
		sched:    sched,
		audio:    audio,
		store:    store,
		dispatch: dispatch,
		logger:   logger,
		high:     high,
	}
}

// HighScore returns the best score seen so far.
func (t *ScoreTracker) HighScore() int {
	return t.high
}

// Observe must be called with every new state. The effect is armed only for
// GameOver{PlayedSound: false}; any other state cancels it.
func (t *ScoreTracker) Observe(s State) {
	t.Stop()

	st, ok := s.(GameOver)
	if !ok || st.PlayedSound {
		return
	}
	score := st.Score
	t.timer = t.sched.After(GameOverDelay, func() error {
		return t.fire(score)
	})
}

// Pending reports whether the game-over effect is armed.
func (t *ScoreTracker) Pending() bool {
	return t.timer != nil
}

// Stop disarms the game-over effect.
func (t *ScoreTracker) Stop() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *ScoreTracker) fire(score int) error {
	t.timer = nil
	if score > t.high {
		t.high = score
		if t.store != nil {
			if err := t.store.SaveHighScore(score); err != nil {
				t.logger.Warn("could not save high score", "score", score, "error", err)
			}
		}
	}
	t.audio.PlayGameOver()
	return t.dispatch(PlayedGameOverSound{})
}
