package simon

import "github.com/vovakirdan/tui-simon/internal/config"

// InputMatcher maps logical key identifiers to game actions through the
// configured key bindings. A signal press is held in a one-slot buffer
// between key-down and key-up and only forwarded on release.
type InputMatcher struct {
	settings     config.Settings
	audio        Audio
	state        func() State
	dispatch     func(Action) error
	openSettings func()

	pressed    Signal
	hasPressed bool
}

// NewInputMatcher creates a matcher. openSettings may be nil.
func NewInputMatcher(settings config.Settings, audio Audio, state func() State, dispatch func(Action) error, openSettings func()) *InputMatcher {
	return &InputMatcher{
		settings:     settings,
		audio:        audio,
		state:        state,
		dispatch:     dispatch,
		openSettings: openSettings,
	}
}

// SetSettings replaces the key bindings.
func (m *InputMatcher) SetSettings(s config.Settings) {
	m.settings = s
}

// SignalFor returns the signal bound to key.
func (m *InputMatcher) SignalFor(key string) (Signal, bool) {
	switch key {
	case m.settings.GreenKey:
		return Green, true
	case m.settings.RedKey:
		return Red, true
	case m.settings.YellowKey:
		return Yellow, true
	case m.settings.BlueKey:
		return Blue, true
	}
	return 0, false
}

// Pressed returns the signal currently held down, if any.
func (m *InputMatcher) Pressed() (Signal, bool) {
	return m.pressed, m.hasPressed
}

// KeyDown plays the tone of a bound signal key whatever the game state and
// remembers it until key-up. Unbound keys are ignored.
func (m *InputMatcher) KeyDown(key string) {
	sig, ok := m.SignalFor(key)
	if !ok {
		return
	}
	m.audio.PlayTone(sig, m.settings.Show())
	m.pressed = sig
	m.hasPressed = true
}

// KeyUp handles the control keys and forwards a held signal as PushButton,
// but only while Receiving. The held signal is cleared either way.
func (m *InputMatcher) KeyUp(key string) error {
	switch key {
	case m.settings.RestartKey:
		if err := m.dispatch(Restart{}); err != nil {
			return err
		}
	case m.settings.SettingsKey:
		if m.openSettings != nil {
			m.openSettings()
		}
	}

	if !m.hasPressed {
		return nil
	}
	sig := m.pressed
	m.hasPressed = false
	if m.state().Kind() != KindReceiving {
		return nil
	}
	return m.dispatch(PushButton{Signal: sig})
}
