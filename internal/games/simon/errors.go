package simon

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is matched by every InvalidTransitionError.
var ErrInvalidTransition = errors.New("simon: invalid transition")

// InvalidTransitionError reports an action that is not valid for the state it
// was applied to. It always indicates a caller bug and is never recovered from.
type InvalidTransitionError struct {
	State  State
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("simon: invalid transition: %v on %v", e.Action, e.State)
}

// Unwrap lets errors.Is match ErrInvalidTransition.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func invalid(s State, a Action) error {
	return &InvalidTransitionError{State: s, Action: a}
}
