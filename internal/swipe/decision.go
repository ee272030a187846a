package swipe

import (
	"fmt"
	"strings"
	"time"
)

// DecisionKind is the outcome of a swipe.
type DecisionKind uint8

const (
	Pass DecisionKind = iota + 1
	Like
	SuperLike
)

func (k DecisionKind) String() string {
	switch k {
	case Pass:
		return "pass"
	case Like:
		return "like"
	case SuperLike:
		return "superlike"
	default:
		return "unknown"
	}
}

// Liked reports whether the kind expresses interest in the candidate.
func (k DecisionKind) Liked() bool {
	return k == Like || k == SuperLike
}

func (k DecisionKind) Valid() bool {
	return k >= Pass && k <= SuperLike
}

// ParseDecisionKind accepts the String form, case-insensitively.
func ParseDecisionKind(s string) (DecisionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pass", "nope":
		return Pass, nil
	case "like":
		return Like, nil
	case "superlike", "super_like", "super-like":
		return SuperLike, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownDecision, s)
}

// Decision is one finalized entry of the history. Only the candidate id is
// kept, never the full profile.
type Decision struct {
	CandidateID string       `json:"candidate_id"`
	Kind        DecisionKind `json:"kind"`
	Sequence    uint64       `json:"sequence"`
	Timestamp   time.Time    `json:"timestamp"`
}

// DecisionRecorder is an append-only history with a single-step rewind.
// After a rewind the next rewind fails until a new decision is recorded.
type DecisionRecorder struct {
	history []Decision
	now     func() time.Time
	// rewindable is set by Record and cleared by RewindLast.
	rewindable bool
}

// NewDecisionRecorder creates a recorder. A nil clock means time.Now.
func NewDecisionRecorder(clock func() time.Time) *DecisionRecorder {
	if clock == nil {
		clock = time.Now
	}
	return &DecisionRecorder{now: clock}
}

// Record appends a decision and returns its sequence number, which is one
// past the current last entry (1 for an empty history). The candidate id is
// not checked; recording the same id twice yields two entries.
func (r *DecisionRecorder) Record(candidateID string, kind DecisionKind) uint64 {
	var seq uint64 = 1
	if n := len(r.history); n > 0 {
		seq = r.history[n-1].Sequence + 1
	}
	r.history = append(r.history, Decision{
		CandidateID: candidateID,
		Kind:        kind,
		Sequence:    seq,
		Timestamp:   r.now(),
	})
	r.rewindable = true
	return seq
}

// CanRewind reports whether RewindLast would succeed.
func (r *DecisionRecorder) CanRewind() bool {
	return r.rewindable && len(r.history) > 0
}

// RewindLast removes and returns the most recent decision. There is no redo:
// a second consecutive call fails with ErrNothingToRewind.
func (r *DecisionRecorder) RewindLast() (Decision, error) {
	if !r.CanRewind() {
		return Decision{}, ErrNothingToRewind
	}
	n := len(r.history)
	d := r.history[n-1]
	r.history = r.history[:n-1]
	r.rewindable = false
	return d, nil
}

// Last returns the most recent decision, if any.
func (r *DecisionRecorder) Last() (Decision, bool) {
	if len(r.history) == 0 {
		return Decision{}, false
	}
	return r.history[len(r.history)-1], true
}

// History returns a copy of the decisions in insertion order.
func (r *DecisionRecorder) History() []Decision {
	out := make([]Decision, len(r.history))
	copy(out, r.history)
	return out
}

func (r *DecisionRecorder) Len() int { return len(r.history) }

func (k DecisionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *DecisionKind) UnmarshalText(b []byte) error {
	parsed, err := ParseDecisionKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
