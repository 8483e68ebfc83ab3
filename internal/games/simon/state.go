package simon

import "fmt"

// Kind identifies which variant of State a value is.
type Kind int

const (
	KindBegin Kind = iota
	KindPlaying
	KindReceiving
	KindGameOver
)

func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindPlaying:
		return "playing"
	case KindReceiving:
		return "receiving"
	case KindGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// State is the closed set of game states. Transitions always produce a new
// value; states are never mutated in place.
type State interface {
	Kind() Kind
	String() string
	state()
}

// Begin is the initial state: no pattern yet.
type Begin struct{}

// Playing means the machine is demonstrating Pattern[Index].
// Gap is true during the silent phase before the signal is shown.
type Playing struct {
	Pattern Pattern
	Index   int
	Gap     bool
	Score   int
}

// Receiving waits for the player's press of Pattern[Index].
type Receiving struct {
	Pattern Pattern
	Index   int
	Score   int
}

// GameOver is terminal until Restart. PlayedSound latches once the
// game-over cue and high score update have happened.
type GameOver struct {
	PlayedSound bool
	Score       int
}

func (Begin) Kind() Kind     { return KindBegin }
func (Playing) Kind() Kind   { return KindPlaying }
func (Receiving) Kind() Kind { return KindReceiving }
func (GameOver) Kind() Kind  { return KindGameOver }

func (Begin) state()     {}
func (Playing) state()   {}
func (Receiving) state() {}
func (GameOver) state()  {}

func (Begin) String() string { return "Begin" }

func (s Playing) String() string {
	return fmt.Sprintf("Playing{pattern:%v index:%d gap:%t score:%d}", s.Pattern, s.Index, s.Gap, s.Score)
}

func (s Receiving) String() string {
	return fmt.Sprintf("Receiving{pattern:%v index:%d score:%d}", s.Pattern, s.Index, s.Score)
}

func (s GameOver) String() string {
	return fmt.Sprintf("GameOver{playedSound:%t score:%d}", s.PlayedSound, s.Score)
}

// Score returns the score to display for s: 0 before the first game,
// otherwise the number of completed rounds.
func Score(s State) int {
	switch st := s.(type) {
	case Playing:
		return st.Score
	case Receiving:
		return st.Score
	case GameOver:
		return st.Score
	default:
		return 0
	}
}

// PatternOf returns the pattern carried by s, or nil for Begin and GameOver.
func PatternOf(s State) Pattern {
	switch st := s.(type) {
	case Playing:
		return st.Pattern
	case Receiving:
		return st.Pattern
	default:
		return nil
	}
}

// Action is the closed set of inputs to Transition.
type Action interface {
	String() string
	action()
}

// Restart starts a fresh game from any state.
type Restart struct{}

// PushButton is the player's press of a signal.
type PushButton struct {
	Signal Signal
}

// FinishedShowingSection ends the current gap or show phase of Playing.
type FinishedShowingSection struct{}

// PlayedGameOverSound acknowledges the one-shot game-over effect.
type PlayedGameOverSound struct{}

func (Restart) action()                {}
func (PushButton) action()             {}
func (FinishedShowingSection) action() {}
func (PlayedGameOverSound) action()    {}

func (Restart) String() string                { return "Restart" }
func (a PushButton) String() string           { return fmt.Sprintf("PushButton(%s)", a.Signal) }
func (FinishedShowingSection) String() string { return "FinishedShowingSection" }
func (PlayedGameOverSound) String() string    { return "PlayedGameOverSound" }
