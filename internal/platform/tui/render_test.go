package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-simon/internal/games/simon"
)

func TestBoardLitDuringShowPhase(t *testing.T) {
	pattern := simon.Pattern{simon.Red, simon.Blue}

	gap := boardView{State: simon.Playing{Pattern: pattern, Index: 1, Gap: true}}
	for _, s := range simon.Signals {
		if gap.lit(s) {
			t.Errorf("%v lit during a gap", s)
		}
	}

	show := boardView{State: simon.Playing{Pattern: pattern, Index: 1, Gap: false}}
	for _, s := range simon.Signals {
		if want := s == simon.Blue; show.lit(s) != want {
			t.Errorf("%v lit = %v, want %v", s, show.lit(s), want)
		}
	}
}

func TestBoardLitWhilePressed(t *testing.T) {
	v := boardView{State: simon.Begin{}, Pressed: simon.Yellow, HasPressed: true}
	if !v.lit(simon.Yellow) || v.lit(simon.Green) {
		t.Error("only the pressed pad should be lit")
	}
}

func TestBoardHub(t *testing.T) {
	tests := []struct {
		state simon.State
		want  string
	}{
		{simon.Begin{}, "press r to begin"},
		{simon.Playing{Pattern: simon.Pattern{simon.Green}, Gap: true}, "SIMON"},
		{simon.Receiving{Pattern: simon.Pattern{simon.Green}, Score: 3}, "3"},
		{simon.GameOver{Score: 4}, "GAME OVER  4"},
	}
	for _, tt := range tests {
		v := boardView{State: tt.state, RestartKey: "r"}
		if got := v.hub(); !strings.Contains(got, tt.want) {
			t.Errorf("hub(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestBoardTooSmall(t *testing.T) {
	v := boardView{State: simon.Begin{}}
	if out := v.render(10, 5, ""); !strings.Contains(out, "too small") {
		t.Errorf("expected too-small notice, got %q", out)
	}
}
