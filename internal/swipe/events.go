package swipe

import "fmt"

// EventType names what changed in the card stack.
type EventType uint8

const (
	EventActiveChanged EventType = iota + 1
	EventDecisionCommitted
	EventRewound
	EventQueueEmpty
	EventQueueLow
)

func (t EventType) String() string {
	switch t {
	case EventActiveChanged:
		return "active_changed"
	case EventDecisionCommitted:
		return "decision_committed"
	case EventRewound:
		return "rewound"
	case EventQueueEmpty:
		return "queue_empty"
	case EventQueueLow:
		return "queue_low"
	default:
		return "unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Event is emitted to listeners after each state change. Only the fields
// relevant to Type are set.
type Event struct {
	Type EventType `json:"type"`

	// ActiveChanged
	Active *CandidateProfile `json:"active,omitempty"`
	Next   *CandidateProfile `json:"next,omitempty"`

	// DecisionCommitted, Rewound
	Decision   *Decision         `json:"decision,omitempty"`
	Candidate  *CandidateProfile `json:"candidate,omitempty"`
	ExitOffset *Vector           `json:"exit_offset,omitempty"`

	// QueueLow
	Pending int `json:"pending,omitempty"`
}

// Listener receives engine events synchronously on the caller's goroutine.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// EventBuffer is a Listener that buffers events until drained.
type EventBuffer struct {
	events []Event
}

func (b *EventBuffer) OnEvent(e Event) { b.events = append(b.events, e) }

// Drain returns buffered events and empties the buffer.
func (b *EventBuffer) Drain() []Event {
	out := b.events
	b.events = nil
	return out
}

// Requeue puts events back in front of anything buffered since they were
// drained, keeping their original order.
func (b *EventBuffer) Requeue(events []Event) {
	if len(events) == 0 {
		return
	}
	b.events = append(append(make([]Event, 0, len(events)+len(b.events)), events...), b.events...)
}

func (t *EventType) UnmarshalText(b []byte) error {
	for c := EventActiveChanged; c <= EventQueueLow; c++ {
		if c.String() == string(b) {
			*t = c
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", b)
}
