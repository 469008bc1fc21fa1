package core

import (
	"errors"
	"fmt"
)

// ErrNoPlayBalance rejects entering PLAY with an empty balance. The snapshot
// is left untouched; callers surface this as a warning, not a failure.
var ErrNoPlayBalance = errors.New("play balance is empty; earn some work time first")

// ErrQuestNotFound is returned when a claim references an unknown quest id.
var ErrQuestNotFound = errors.New("quest not found")

// ValidationError rejects bad input at the ledger boundary without mutating
// any state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
