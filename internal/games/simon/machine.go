package simon

// Transition applies a to s and returns the next state.
// gen supplies new signals on Restart and when a round is won.
// Combinations that cannot be reached by a correct caller return an
// *InvalidTransitionError and the zero State.
func Transition(s State, a Action, gen Generator) (State, error) {
	switch act := a.(type) {
	case Restart:
		return Playing{
			Pattern: Pattern{gen.Next()},
			Index:   0,
			Gap:     true,
			Score:   0,
		}, nil

	case FinishedShowingSection:
		st, ok := s.(Playing)
		if !ok {
			return nil, invalid(s, a)
		}
		switch {
		case st.Gap:
			st.Gap = false
			return st, nil
		case st.Index == len(st.Pattern)-1:
			return Receiving{Pattern: st.Pattern, Index: 0, Score: st.Score}, nil
		default:
			return Playing{Pattern: st.Pattern, Index: st.Index + 1, Gap: true, Score: st.Score}, nil
		}

	case PushButton:
		var st Receiving
		switch cur := s.(type) {
		case Receiving:
			st = cur
		case Playing:
			// A press during the demonstration ends it: the press is matched
			// against the first signal as if receiving had already begun.
			st = Receiving{Pattern: cur.Pattern, Index: 0, Score: cur.Score}
		default:
			return nil, invalid(s, a)
		}
		switch {
		case act.Signal != st.Pattern[st.Index]:
			return GameOver{PlayedSound: false, Score: st.Score}, nil
		case st.Index == len(st.Pattern)-1:
			return Playing{
				Pattern: st.Pattern.Append(gen.Next()),
				Index:   0,
				Gap:     true,
				Score:   st.Score + 1,
			}, nil
		default:
			return Receiving{Pattern: st.Pattern, Index: st.Index + 1, Score: st.Score}, nil
		}

	case PlayedGameOverSound:
		st, ok := s.(GameOver)
		if !ok {
			return nil, invalid(s, a)
		}
		st.PlayedSound = true
		return st, nil
	}

	return nil, invalid(s, a)
}
