package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-simon/internal/games/simon"
)

// Board layout constants
const (
	padWidth   = 16
	padHeight  = 6
	minWidth   = padWidth*2 + 2
	minHeight  = padHeight*2 + 6
	hubPadding = 1
)

// padColors maps each signal to its dim and lit background.
var padColors = map[simon.Signal][2]lipgloss.Color{
	simon.Green:  {lipgloss.Color("22"), lipgloss.Color("46")},
	simon.Red:    {lipgloss.Color("52"), lipgloss.Color("196")},
	simon.Yellow: {lipgloss.Color("58"), lipgloss.Color("226")},
	simon.Blue:   {lipgloss.Color("17"), lipgloss.Color("33")},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	hubStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0")).Padding(0, hubPadding)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// boardView is everything needed to draw one frame of the board.
type boardView struct {
	State      simon.State
	Pressed    simon.Signal
	HasPressed bool
	HighScore  int
	RestartKey string
}

// lit reports whether the pad for sig is highlighted.
func (v boardView) lit(sig simon.Signal) bool {
	if v.HasPressed && v.Pressed == sig {
		return true
	}
	if st, ok := v.State.(simon.Playing); ok && !st.Gap {
		return st.Pattern[st.Index] == sig
	}
	return false
}

func (v boardView) pad(sig simon.Signal) string {
	colors := padColors[sig]
	bg := colors[0]
	if v.lit(sig) {
		bg = colors[1]
	}
	return lipgloss.NewStyle().
		Width(padWidth).
		Height(padHeight).
		Background(bg).
		Render("")
}

// hub is the text shown between the pads.
func (v boardView) hub() string {
	switch st := v.State.(type) {
	case simon.Begin:
		return fmt.Sprintf("press %s to begin", keyLabel(v.RestartKey))
	case simon.Playing:
		return "SIMON"
	case simon.Receiving:
		return fmt.Sprintf("%d", st.Score)
	case simon.GameOver:
		return overStyle.Render(fmt.Sprintf("GAME OVER  %d", st.Score))
	default:
		return ""
	}
}

func (v boardView) status() string {
	parts := []string{
		fmt.Sprintf("score %d", simon.Score(v.State)),
		fmt.Sprintf("best %d", v.HighScore),
	}
	if p := simon.PatternOf(v.State); p != nil {
		parts = append(parts, fmt.Sprintf("length %d", len(p)))
	}
	return statusStyle.Render(strings.Join(parts, "  ·  "))
}

// render draws the board centered in a width x height area.
func (v boardView) render(width, height int, help string) string {
	if width < minWidth || height < minHeight {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			errorStyle.Render("Terminal too small"))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, v.pad(simon.Green), "  ", v.pad(simon.Red))
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, v.pad(simon.Yellow), "  ", v.pad(simon.Blue))
	hub := lipgloss.PlaceHorizontal(lipgloss.Width(top), lipgloss.Center, hubStyle.Render(v.hub()))

	board := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("S I M O N"),
		"",
		top,
		hub,
		bottom,
		"",
		v.status(),
		help,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, board)
}
