package swipe

import (
	"errors"
	"fmt"
	"strings"
)

// Recoverable engine conditions. None of them changes controller state.
var (
	ErrEmptyQueue         = errors.New("swipe: queue is empty")
	ErrNothingToRewind    = errors.New("swipe: nothing to rewind")
	ErrDuplicateCandidate = errors.New("swipe: duplicate candidate")
	ErrBusy               = errors.New("swipe: card still leaving the stack")
	ErrNoGesture          = errors.New("swipe: no gesture in flight")
	ErrGestureInterrupted = errors.New("swipe: gesture interrupted")
	ErrUnknownDecision    = errors.New("swipe: unknown decision kind")
)

// DuplicateError lists candidate ids dropped by an enqueue because they were
// already pending or already decided. It matches ErrDuplicateCandidate.
type DuplicateError struct {
	IDs []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDuplicateCandidate, strings.Join(e.IDs, ","))
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicateCandidate }
