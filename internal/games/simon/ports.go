package simon

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running. A stopped timer never fires, even if its expiry
	// was already queued on the loop.
	Stop() bool
}

// Scheduler runs callbacks on the game loop after a delay.
// Callbacks must run on the same goroutine that calls Engine methods, never
// concurrently with them. An error returned by a callback is fatal to the loop.
type Scheduler interface {
	After(d time.Duration, fire func() error) Timer
}

// Audio plays the game's cues. Implementations must not block.
type Audio interface {
	PlayTone(s Signal, d time.Duration)
	PlayGameOver()
}

// HighScoreStore persists the best score.
type HighScoreStore interface {
	SaveHighScore(score int) error
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) PlayTone(Signal, time.Duration) {}
func (NopAudio) PlayGameOver()                  {}
