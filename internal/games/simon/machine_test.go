package simon

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestartFromAnyState(t *testing.T) {
	states := []State{
		Begin{},
		Playing{Pattern: Pattern{Red, Blue}, Index: 1, Gap: false, Score: 1},
		Receiving{Pattern: Pattern{Red, Blue, Green}, Index: 2, Score: 2},
		GameOver{PlayedSound: false, Score: 4},
		GameOver{PlayedSound: true, Score: 4},
	}

	for _, s := range states {
		t.Run(s.String(), func(t *testing.T) {
			next, err := Transition(s, Restart{}, scriptedGenerator(Yellow))
			require.NoError(t, err)
			require.Equal(t, Playing{Pattern: Pattern{Yellow}, Index: 0, Gap: true, Score: 0}, next)
		})
	}
}

func TestFinishedShowingSection(t *testing.T) {
	gen := scriptedGenerator(Green)

	s := State(Playing{Pattern: Pattern{Green}, Index: 0, Gap: true, Score: 0})
	s, err := Transition(s, FinishedShowingSection{}, gen)
	require.NoError(t, err)
	require.Equal(t, Playing{Pattern: Pattern{Green}, Index: 0, Gap: false, Score: 0}, s)

	s, err = Transition(s, FinishedShowingSection{}, gen)
	require.NoError(t, err)
	require.Equal(t, Receiving{Pattern: Pattern{Green}, Index: 0, Score: 0}, s)
}

func TestFinishedShowingSectionAdvancesIndex(t *testing.T) {
	s := Playing{Pattern: Pattern{Green, Red, Blue}, Index: 0, Gap: false, Score: 2}

	next, err := Transition(s, FinishedShowingSection{}, nil)
	require.NoError(t, err)
	require.Equal(t, Playing{Pattern: Pattern{Green, Red, Blue}, Index: 1, Gap: true, Score: 2}, next)
}

func TestPushButtonWinsRound(t *testing.T) {
	s := Receiving{Pattern: Pattern{Green}, Index: 0, Score: 0}

	next, err := Transition(s, PushButton{Signal: Green}, scriptedGenerator(Blue))
	require.NoError(t, err)
	require.Equal(t, Playing{Pattern: Pattern{Green, Blue}, Index: 0, Gap: true, Score: 1}, next)
}

func TestPushButtonMismatch(t *testing.T) {
	s := Receiving{Pattern: Pattern{Green, Red}, Index: 1, Score: 0}

	next, err := Transition(s, PushButton{Signal: Yellow}, nil)
	require.NoError(t, err)
	require.Equal(t, GameOver{PlayedSound: false, Score: 0}, next)
}

func TestPushButtonMismatchAtEveryIndex(t *testing.T) {
	pattern := Pattern{Green, Red, Yellow, Blue, Green}
	for i := range pattern {
		wrong := Signals[(int(pattern[i])+1)%len(Signals)]
		s := Receiving{Pattern: pattern, Index: i, Score: 7}

		next, err := Transition(s, PushButton{Signal: wrong}, nil)
		require.NoError(t, err)
		require.Equal(t, GameOver{PlayedSound: false, Score: 7}, next, "index %d", i)
	}
}

func TestPushButtonAdvancesWithinPattern(t *testing.T) {
	s := Receiving{Pattern: Pattern{Green, Red}, Index: 0, Score: 3}

	next, err := Transition(s, PushButton{Signal: Green}, nil)
	require.NoError(t, err)
	require.Equal(t, Receiving{Pattern: Pattern{Green, Red}, Index: 1, Score: 3}, next)
}

func TestPushButtonDuringPlayingActsAsReceiving(t *testing.T) {
	pattern := Pattern{Red, Blue, Blue}
	for index := range pattern {
		for _, gap := range []bool{true, false} {
			for _, sig := range Signals {
				playing := Playing{Pattern: pattern, Index: index, Gap: gap, Score: 2}
				receiving := Receiving{Pattern: pattern, Index: 0, Score: 2}

				got, err := Transition(playing, PushButton{Signal: sig}, scriptedGenerator(Green))
				require.NoError(t, err)
				want, err := Transition(receiving, PushButton{Signal: sig}, scriptedGenerator(Green))
				require.NoError(t, err)
				require.Equal(t, want, got, "index %d gap %v signal %v", index, gap, sig)
			}
		}
	}
}

func TestPlayedGameOverSound(t *testing.T) {
	next, err := Transition(GameOver{PlayedSound: false, Score: 5}, PlayedGameOverSound{}, nil)
	require.NoError(t, err)
	require.Equal(t, GameOver{PlayedSound: true, Score: 5}, next)

	again, err := Transition(next, PlayedGameOverSound{}, nil)
	require.NoError(t, err)
	require.Equal(t, next, again, "acknowledging twice must be a no-op")
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		state  State
		action Action
	}{
		{Begin{}, PushButton{Signal: Green}},
		{Begin{}, FinishedShowingSection{}},
		{Begin{}, PlayedGameOverSound{}},
		{Receiving{Pattern: Pattern{Green}}, FinishedShowingSection{}},
		{Receiving{Pattern: Pattern{Green}}, PlayedGameOverSound{}},
		{Playing{Pattern: Pattern{Green}, Gap: true}, PlayedGameOverSound{}},
		{GameOver{}, PushButton{Signal: Green}},
		{GameOver{PlayedSound: true}, PushButton{Signal: Green}},
		{GameOver{}, FinishedShowingSection{}},
		{Begin{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			next, err := Transition(tt.state, tt.action, scriptedGenerator(Green))
			require.Error(t, err)
			require.Nil(t, next)
			require.True(t, errors.Is(err, ErrInvalidTransition))

			var ite *InvalidTransitionError
			require.True(t, errors.As(err, &ite))
			require.Equal(t, tt.state, ite.State)
			require.Equal(t, tt.action, ite.Action)
		})
	}
}

func TestRoundDrivesExactlyNPresses(t *testing.T) {
	gen := scriptedGenerator(Green, Red, Yellow, Blue, Green)
	s, err := Transition(Begin{}, Restart{}, gen)
	require.NoError(t, err)

	for round := 1; round <= 4; round++ {
		pattern := PatternOf(s)
		require.Len(t, pattern, round)

		// Play out the demonstration.
		for s.Kind() == KindPlaying {
			s, err = Transition(s, FinishedShowingSection{}, gen)
			require.NoError(t, err)
		}

		presses := 0
		for _, sig := range pattern {
			require.Equal(t, KindReceiving, s.Kind())
			s, err = Transition(s, PushButton{Signal: sig}, gen)
			require.NoError(t, err)
			presses++
		}
		require.Equal(t, len(pattern), presses)
		require.Equal(t, round, Score(s))

		next := PatternOf(s)
		require.Len(t, next, round+1)
		require.True(t, next[:round].Equal(pattern), "pattern prefix must be kept")
	}
}

func TestWinningRoundDoesNotAliasPattern(t *testing.T) {
	pattern := make(Pattern, 1, 8)
	pattern[0] = Green
	s := Receiving{Pattern: pattern, Index: 0, Score: 0}

	first, err := Transition(s, PushButton{Signal: Green}, scriptedGenerator(Red))
	require.NoError(t, err)
	second, err := Transition(s, PushButton{Signal: Green}, scriptedGenerator(Blue))
	require.NoError(t, err)

	require.Equal(t, Pattern{Green, Red}, PatternOf(first))
	require.Equal(t, Pattern{Green, Blue}, PatternOf(second))
	require.Len(t, s.Pattern, 1)
}

func checkInvariants(t *testing.T, s State, prevScore int) {
	t.Helper()
	switch st := s.(type) {
	case Playing:
		require.GreaterOrEqual(t, len(st.Pattern), 1)
		require.True(t, st.Index >= 0 && st.Index < len(st.Pattern), "index %d out of %v", st.Index, st.Pattern)
	case Receiving:
		require.GreaterOrEqual(t, len(st.Pattern), 1)
		require.True(t, st.Index >= 0 && st.Index < len(st.Pattern), "index %d out of %v", st.Index, st.Pattern)
	}
	require.GreaterOrEqual(t, Score(s), prevScore)
}

func TestRandomActionSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	gen := NewRandomGenerator(7)

	for run := 0; run < 200; run++ {
		s := State(Begin{})
		score := 0
		for step := 0; step < 300; step++ {
			var a Action
			switch rng.Intn(10) {
			case 0:
				a = Restart{}
			case 1, 2:
				a = FinishedShowingSection{}
			case 3:
				a = PlayedGameOverSound{}
			case 4, 5, 6:
				// Mostly correct presses so games get long.
				if p := PatternOf(s); p != nil {
					idx := 0
					if r, ok := s.(Receiving); ok {
						idx = r.Index
					}
					a = PushButton{Signal: p[idx]}
				} else {
					a = PushButton{Signal: Signals[rng.Intn(4)]}
				}
			default:
				a = PushButton{Signal: Signals[rng.Intn(4)]}
			}

			next, err := Transition(s, a, gen)
			if err != nil {
				require.ErrorIs(t, err, ErrInvalidTransition)
				continue
			}
			if _, ok := a.(Restart); ok {
				require.Equal(t, 0, Score(next))
				require.Len(t, PatternOf(next), 1)
			} else {
				checkInvariants(t, next, score)
			}
			score = Score(next)
			s = next
		}
	}
}

func TestScore(t *testing.T) {
	require.Equal(t, 0, Score(Begin{}))
	require.Equal(t, 3, Score(Playing{Pattern: Pattern{Green}, Score: 3}))
	require.Equal(t, 4, Score(Receiving{Pattern: Pattern{Green}, Score: 4}))
	require.Equal(t, 5, Score(GameOver{Score: 5}))
}

func TestRandomGeneratorCoversAlphabet(t *testing.T) {
	gen := NewRandomGenerator(1)
	seen := make(map[Signal]int)
	for i := 0; i < 4000; i++ {
		s := gen.Next()
		require.True(t, s.Valid())
		seen[s]++
	}
	require.Len(t, seen, 4)
	for s, n := range seen {
		require.InDelta(t, 1000, n, 150, "signal %v drawn %d times", s, n)
	}
}
