package simon

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/config"
)

// Options configures an Engine. Scheduler is required; the rest have defaults.
type Options struct {
	Settings   config.Settings
	Scheduler  Scheduler
	Audio      Audio          // defaults to NopAudio
	Generator  Generator      // defaults to a time-seeded RandomGenerator
	HighScores HighScoreStore // nil keeps the high score in memory
	HighScore  int            // best score loaded at startup
	Logger     *log.Logger    // defaults to log.Default()

	// OnOpenSettings is called when the settings key is released.
	OnOpenSettings func()
}

// Engine owns the game state and is the only place transitions are applied.
// It is not safe for concurrent use: every method, and every callback handed
// to the Scheduler, must run on the host's loop goroutine.
type Engine struct {
	state    State
	settings config.Settings
	gen      Generator
	audio    Audio
	logger   *log.Logger

	seq    *Sequencer
	scores *ScoreTracker
	input  *InputMatcher

	observers []func(prev, next State)
}

// NewEngine creates an engine in the Begin state.
func NewEngine(opts Options) *Engine {
	if opts.Scheduler == nil {
		panic("simon: engine needs a scheduler")
	}
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}
	if opts.Generator == nil {
		opts.Generator = NewRandomGenerator(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	e := &Engine{
		state:    Begin{},
		settings: opts.Settings,
		gen:      opts.Generator,
		audio:    opts.Audio,
		logger:   opts.Logger,
	}
	e.seq = NewSequencer(opts.Scheduler, opts.Audio, opts.Settings, e.Dispatch)
	e.scores = NewScoreTracker(opts.Scheduler, opts.Audio, opts.HighScores, opts.HighScore, opts.Logger, e.Dispatch)
	e.input = NewInputMatcher(opts.Settings, opts.Audio, e.State, e.Dispatch, opts.OnOpenSettings)
	return e
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Settings returns the settings in effect.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// HighScore returns the best score, including one reached this session.
func (e *Engine) HighScore() int {
	return e.scores.HighScore()
}

// Pressed returns the signal currently held on the keyboard, for highlighting.
func (e *Engine) Pressed() (Signal, bool) {
	return e.input.Pressed()
}

// OnTransition registers fn to run after every applied transition.
// fn must not call Dispatch.
func (e *Engine) OnTransition(fn func(prev, next State)) {
	e.observers = append(e.observers, fn)
}

// Dispatch applies a to the current state. An invalid transition leaves the
// state untouched and returns an *InvalidTransitionError.
func (e *Engine) Dispatch(a Action) error {
	next, err := Transition(e.state, a, e.gen)
	if err != nil {
		e.logger.Error("invalid transition", "state", e.state, "action", a)
		return err
	}

	prev := e.state
	e.state = next
	e.logger.Debug("transition", "action", a, "state", next)

	e.seq.Observe(next)
	e.scores.Observe(next)
	for _, fn := range e.observers {
		fn(prev, next)
	}
	return nil
}

// KeyDown handles a key press from the keyboard path.
func (e *Engine) KeyDown(key string) {
	e.input.KeyDown(key)
}

// KeyUp handles a key release from the keyboard path.
func (e *Engine) KeyUp(key string) error {
	return e.input.KeyUp(key)
}

// Press is the direct press path: it plays the tone and dispatches
// PushButton at once. A press during Playing cuts the demonstration short.
func (e *Engine) Press(s Signal) error {
	e.audio.PlayTone(s, e.settings.Show())
	return e.Dispatch(PushButton{Signal: s})
}

// UpdateSettings applies new settings. Timers already pending keep their
// duration; the next phase uses the new values.
func (e *Engine) UpdateSettings(s config.Settings) {
	e.settings = s
	e.seq.SetSettings(s)
	e.input.SetSettings(s)
}

// Close cancels every pending timer.
func (e *Engine) Close() {
	e.seq.Stop()
	e.scores.Stop()
}
