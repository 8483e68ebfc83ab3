// Package simon implements the pattern-memory game: the state machine, the
// timed playback sequencer, key matching and score tracking.
// It contains no Bubble Tea code; the platform drives it through the
// Scheduler and Audio ports.
package simon

import "fmt"

// Signal is one of the four colored tones the game can show or require.
type Signal int

const (
	Green Signal = iota
	Red
	Yellow
	Blue
)

// Signals lists the whole alphabet in board order (top-left to bottom-right).
var Signals = []Signal{Green, Red, Yellow, Blue}

// String returns the color name of the signal.
func (s Signal) String() string {
	switch s {
	case Green:
		return "green"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("signal(%d)", int(s))
	}
}

// Valid reports whether s belongs to the alphabet.
func (s Signal) Valid() bool {
	return s >= Green && s <= Blue
}

// Note returns the MIDI note played for the signal.
func (s Signal) Note() int {
	switch s {
	case Green:
		return 76 // E5
	case Red:
		return 69 // A4
	case Yellow:
		return 73 // C#5
	case Blue:
		return 64 // E4
	default:
		return 0
	}
}

// GameOverChord is the four-note chord played when a game ends.
var GameOverChord = [4]int{60, 63, 66, 69} // C4 Eb4 Gb4 A4

// Pattern is the ordered sequence the player has to repeat.
type Pattern []Signal

// Append returns a new pattern with s added at the end.
// The receiver is never modified and the result never shares its backing array,
// so states holding the old pattern stay intact.
func (p Pattern) Append(s Signal) Pattern {
	next := make(Pattern, len(p), len(p)+1)
	copy(next, p)
	return append(next, s)
}

// Equal reports whether both patterns hold the same signals in the same order.
func (p Pattern) Equal(other Pattern) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	return fmt.Sprint([]Signal(p))
}
