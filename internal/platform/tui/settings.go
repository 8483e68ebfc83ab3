package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-simon/internal/config"
)

// Keys that drive the settings dialog itself and therefore cannot be bound.
const (
	formNext   = "tab"
	formPrev   = "shift+tab"
	formSave   = "enter"
	formCancel = "esc"
)

var (
	formStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 2)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	captureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Underline(true)
)

// formResult is what the dialog reports after handling a key.
type formResult int

const (
	formEditing formResult = iota
	formSaved
	formCancelled
)

type durationField struct {
	label string
	input textinput.Model
}

type keyField struct {
	label string
	value string
}

// SettingsForm edits the three durations and the six key bindings.
// Duration fields are numeric inputs; key fields capture the next key pressed.
type SettingsForm struct {
	durations []durationField
	keys      []keyField
	focus     int
	err       error
}

// digitsOnly reports whether a typed key may go into a duration field.
// Keys other than runes (backspace, arrows) are always allowed.
func digitsOnly(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return msg.Type != tea.KeySpace
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func newDurationInput(ms int) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 6
	ti.Width = 8
	ti.Prompt = ""
	ti.SetValue(strconv.Itoa(ms))
	return ti
}

// NewSettingsForm creates a form pre-filled with s.
func NewSettingsForm(s config.Settings) *SettingsForm {
	f := &SettingsForm{
		durations: []durationField{
			{label: "First gap ms (silence before the first color)", input: newDurationInput(s.FirstGapMS)},
			{label: "Gap ms (space after a color before the next)", input: newDurationInput(s.GapMS)},
			{label: "Color ms (how long to show the color)", input: newDurationInput(s.ShowMS)},
		},
		keys: []keyField{
			{label: "Green keybind", value: s.GreenKey},
			{label: "Red keybind", value: s.RedKey},
			{label: "Yellow keybind", value: s.YellowKey},
			{label: "Blue keybind", value: s.BlueKey},
			{label: "Restart keybind", value: s.RestartKey},
			{label: "Settings keybind", value: s.SettingsKey},
		},
	}
	f.setFocus(0)
	return f
}

func (f *SettingsForm) fieldCount() int {
	return len(f.durations) + len(f.keys)
}

func (f *SettingsForm) setFocus(i int) tea.Cmd {
	n := f.fieldCount()
	f.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for j := range f.durations {
		if j == f.focus {
			cmd = f.durations[j].input.Focus()
		} else {
			f.durations[j].input.Blur()
		}
	}
	return cmd
}

// Settings builds the settings currently entered in the form.
func (f *SettingsForm) Settings() (config.Settings, error) {
	ms := make([]int, len(f.durations))
	for i, d := range f.durations {
		v, err := strconv.Atoi(strings.TrimSpace(d.input.Value()))
		if err != nil {
			return config.Settings{}, fmt.Errorf("%s: not a number", d.label)
		}
		ms[i] = v
	}

	s := config.Settings{
		FirstGapMS:  ms[0],
		GapMS:       ms[1],
		ShowMS:      ms[2],
		GreenKey:    f.keys[0].value,
		RedKey:      f.keys[1].value,
		YellowKey:   f.keys[2].value,
		BlueKey:     f.keys[3].value,
		RestartKey:  f.keys[4].value,
		SettingsKey: f.keys[5].value,
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

// Update handles a key while the dialog is open.
func (f *SettingsForm) Update(msg tea.KeyMsg) (formResult, tea.Cmd) {
	k := keyID(msg)
	switch k {
	case formCancel:
		return formCancelled, nil
	case formSave:
		if _, err := f.Settings(); err != nil {
			f.err = err
			return formEditing, nil
		}
		return formSaved, nil
	case formNext:
		return formEditing, f.setFocus(f.focus + 1)
	case formPrev:
		return formEditing, f.setFocus(f.focus - 1)
	}

	if f.focus < len(f.durations) {
		if !digitsOnly(msg) {
			return formEditing, nil
		}
		var cmd tea.Cmd
		f.durations[f.focus].input, cmd = f.durations[f.focus].input.Update(msg)
		return formEditing, cmd
	}

	// Key fields capture whatever was pressed.
	f.keys[f.focus-len(f.durations)].value = k
	f.err = nil
	return formEditing, nil
}

// SetError shows err under the form, e.g. when saving failed.
func (f *SettingsForm) SetError(err error) {
	f.err = err
}

// View renders the dialog.
func (f *SettingsForm) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Settings"))
	sb.WriteString("\n\n")

	for i, d := range f.durations {
		sb.WriteString(f.label(i, d.label))
		sb.WriteString("\n  ")
		sb.WriteString(d.input.View())
		sb.WriteString("\n\n")
	}
	for i, kf := range f.keys {
		idx := len(f.durations) + i
		sb.WriteString(f.label(idx, kf.label))
		sb.WriteString("\n  ")
		value := captureStyle.Render(keyLabel(kf.value))
		if idx == f.focus {
			value += statusStyle.Render("  press a key")
		}
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if f.err != nil {
		sb.WriteString(errorStyle.Render(f.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(statusStyle.Render("tab/shift+tab move · enter save · esc cancel"))
	return formStyle.Render(sb.String())
}

func (f *SettingsForm) label(idx int, text string) string {
	if idx == f.focus {
		return focusStyle.Render("> " + text)
	}
	return labelStyle.Render("  " + text)
}
