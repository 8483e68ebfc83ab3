package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/config"
)

// Keys that are handled by the host and never reach the engine.
const (
	keyQuit = "ctrl+c"
)

// GameKeyMap describes the live key bindings for the help bar.
type GameKeyMap struct {
	Green    key.Binding
	Red      key.Binding
	Yellow   key.Binding
	Blue     key.Binding
	Restart  key.Binding
	Settings key.Binding
	Quit     key.Binding
}

// NewGameKeyMap builds bindings from the configured keys.
func NewGameKeyMap(s config.Settings) GameKeyMap {
	return GameKeyMap{
		Green:    key.NewBinding(key.WithKeys(s.GreenKey), key.WithHelp(keyLabel(s.GreenKey), "green")),
		Red:      key.NewBinding(key.WithKeys(s.RedKey), key.WithHelp(keyLabel(s.RedKey), "red")),
		Yellow:   key.NewBinding(key.WithKeys(s.YellowKey), key.WithHelp(keyLabel(s.YellowKey), "yellow")),
		Blue:     key.NewBinding(key.WithKeys(s.BlueKey), key.WithHelp(keyLabel(s.BlueKey), "blue")),
		Restart:  key.NewBinding(key.WithKeys(s.RestartKey), key.WithHelp(keyLabel(s.RestartKey), "restart")),
		Settings: key.NewBinding(key.WithKeys(s.SettingsKey), key.WithHelp(keyLabel(s.SettingsKey), "settings")),
		Quit:     key.NewBinding(key.WithKeys(keyQuit), key.WithHelp(keyQuit, "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Green, k.Red, k.Yellow, k.Blue, k.Restart, k.Settings, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Green, k.Red, k.Yellow, k.Blue},
		{k.Restart, k.Settings, k.Quit},
	}
}

// keyID converts a Bubble Tea key message into the logical key identifier
// stored in settings.
func keyID(msg tea.KeyMsg) string {
	return msg.String()
}

// keyLabel makes whitespace keys readable in help and the settings dialog.
func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "":
		return "unset"
	default:
		return k
	}
}
