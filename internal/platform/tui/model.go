package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

// releaseDelay is how long a key counts as held. Terminals report presses
// only, so the release is synthesized after this interval.
const releaseDelay = 150 * time.Millisecond

// Config contains everything the host needs to run a game session.
// Settings are the unscaled values edited in the dialog; Difficulty is
// applied on top of them for play only.
type Config struct {
	Settings    config.Settings
	Difficulty  config.DifficultyPreset
	SessionOnly bool        // dialog edits are not written to Store (settings came from --config)
	Seed        int64       // RNG seed (0 = time based)
	Audio       simon.Audio // nil plays nothing
	Store       *storage.Store
	Logger      *log.Logger
	ScreenW     int
	ScreenH     int
}

// keyReleaseMsg ends a synthesized key hold. Stale releases carry an old seq.
type keyReleaseMsg struct {
	seq int
}

// Model is the Bubble Tea model hosting one Simon session.
type Model struct {
	engine *simon.Engine
	sched  *loopScheduler
	store  *storage.Store
	logger *log.Logger

	base        config.Settings
	difficulty  config.DifficultyPreset
	sessionOnly bool

	keys GameKeyMap
	help help.Model

	width  int
	height int

	heldKey    string
	releaseSeq int

	form         *SettingsForm
	openSettings bool

	err      error
	quitting bool
}

// NewModel creates the model and its engine.
func NewModel(cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Model{
		sched:  newLoopScheduler(),
		store:       cfg.Store,
		logger:      logger,
		base:        cfg.Settings,
		difficulty:  cfg.Difficulty,
		sessionOnly: cfg.SessionOnly,
		keys:        NewGameKeyMap(cfg.Settings),
		help:        help.New(),
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
	}

	highScores, high := loadHighScore(cfg.Store, logger)

	m.engine = simon.NewEngine(simon.Options{
		Settings:       m.playSettings(),
		Scheduler:      m.sched,
		Audio:          cfg.Audio,
		Generator:      simon.NewRandomGenerator(cfg.Seed),
		HighScores:     highScores,
		HighScore:      high,
		Logger:         logger,
		OnOpenSettings: func() { m.openSettings = true },
	})
	m.engine.OnTransition(m.recordGame)
	return m
}

// loadHighScore reads the stored best score. If it cannot be read the
// high score is kept in memory only, so a lower score never overwrites it.
func loadHighScore(store *storage.Store, logger *log.Logger) (simon.HighScoreStore, int) {
	if store == nil {
		return nil, 0
	}
	high, err := store.HighScore()
	if err != nil {
		logger.Warn("could not read high score, not saving new ones", "error", err)
		return nil, 0
	}
	return store, high
}

// playSettings returns the base settings with the difficulty applied.
func (m *Model) playSettings() config.Settings {
	s := m.base
	config.ApplyPreset(&s, m.difficulty)
	return s
}

// recordGame stores every finished playthrough in the history.
func (m *Model) recordGame(prev, next simon.State) {
	over, ok := next.(simon.GameOver)
	if !ok || over.PlayedSound || m.store == nil {
		return
	}
	rec := storage.GameRecord{
		RunID:      uuid.New(),
		Score:      over.Score,
		PatternLen: len(simon.PatternOf(prev)),
	}
	if _, err := m.store.SaveGame(rec); err != nil {
		m.logger.Warn("could not record game", "error", err)
	}
}

// Engine exposes the engine, mainly for tests.
func (m *Model) Engine() *simon.Engine {
	return m.engine
}

// Err returns the fatal error that stopped the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var err error

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, err = m.handleKey(msg)

	case keyReleaseMsg:
		if msg.seq == m.releaseSeq {
			err = m.release()
		}

	case timerFiredMsg:
		err = msg.timer.run()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	if err != nil {
		return m, m.fail(err)
	}
	if m.openSettings {
		m.openSettings = false
		m.releaseHeld()
		m.form = NewSettingsForm(m.base)
	}
	return m, tea.Batch(cmd, m.sched.drain())
}

// handleKey routes a key press to the dialog or to the engine.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, error) {
	k := keyID(msg)
	if k == keyQuit {
		m.quitting = true
		m.engine.Close()
		return tea.Quit, nil
	}

	if m.form != nil {
		return m.handleFormKey(msg), nil
	}

	// A new press ends the previous hold first so no press is lost.
	if m.heldKey != "" {
		if err := m.release(); err != nil {
			return nil, err
		}
	}

	m.engine.KeyDown(k)
	m.heldKey = k
	m.releaseSeq++
	seq := m.releaseSeq
	return tea.Tick(releaseDelay, func(time.Time) tea.Msg {
		return keyReleaseMsg{seq: seq}
	}), nil
}

// release sends the key-up of the held key.
func (m *Model) release() error {
	k := m.heldKey
	if k == "" {
		return nil
	}
	m.heldKey = ""
	m.releaseSeq++
	return m.engine.KeyUp(k)
}

// releaseHeld forgets a hold without forwarding it, used when a dialog takes
// over the keyboard.
func (m *Model) releaseHeld() {
	m.heldKey = ""
	m.releaseSeq++
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	result, cmd := m.form.Update(msg)
	switch result {
	case formCancelled:
		m.form = nil
	case formSaved:
		s, err := m.form.Settings()
		if err != nil {
			m.form.SetError(err)
			return nil
		}
		if m.store != nil && !m.sessionOnly {
			if err := config.SaveSettings(m.store, s); err != nil {
				m.logger.Warn("could not save settings", "error", err)
				m.form.SetError(err)
				return nil
			}
		}
		m.base = s
		m.engine.UpdateSettings(m.playSettings())
		m.keys = NewGameKeyMap(s)
		m.form = nil
		m.logger.Info("settings updated", "first_gap_ms", s.FirstGapMS, "gap_ms", s.GapMS, "show_ms", s.ShowMS,
			"difficulty", m.difficulty, "stored", m.store != nil && !m.sessionOnly)
	}
	return cmd
}

// fail stops the session on an unrecoverable error.
func (m *Model) fail(err error) tea.Cmd {
	if errors.Is(err, simon.ErrInvalidTransition) {
		m.logger.Error("game state machine rejected an action", "error", err)
	} else {
		m.logger.Error("session failed", "error", err)
	}
	m.err = err
	m.quitting = true
	m.engine.Close()
	return tea.Quit
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	}

	pressed, hasPressed := m.engine.Pressed()
	v := boardView{
		State:      m.engine.State(),
		Pressed:    pressed,
		HasPressed: hasPressed,
		HighScore:  m.engine.HighScore(),
		RestartKey: m.engine.Settings().RestartKey,
	}
	return v.render(m.width, m.height, m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a session.
func Run(cfg Config) error {
	model := NewModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return err
	}
	return model.Err()
}
