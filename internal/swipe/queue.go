package swipe

// ProfileQueue is the ordered list of pending candidates. The front is the
// next card to show. It is not safe for concurrent use.
type ProfileQueue struct {
	items []CandidateProfile
}

// NewProfileQueue returns an empty queue.
func NewProfileQueue() *ProfileQueue {
	return &ProfileQueue{}
}

// Enqueue appends profiles to the tail. Ids are expected to be unique across
// a session; the queue itself does not check.
func (q *ProfileQueue) Enqueue(profiles ...CandidateProfile) {
	q.items = append(q.items, profiles...)
}

// PeekActive returns the front candidate without removing it.
func (q *ProfileQueue) PeekActive() (CandidateProfile, bool) {
	if len(q.items) == 0 {
		return CandidateProfile{}, false
	}
	return q.items[0], true
}

// PeekNext returns the candidate rendered underneath the active card.
func (q *ProfileQueue) PeekNext() (CandidateProfile, bool) {
	if len(q.items) < 2 {
		return CandidateProfile{}, false
	}
	return q.items[1], true
}

// Dequeue removes and returns the front candidate.
func (q *ProfileQueue) Dequeue() (CandidateProfile, error) {
	if len(q.items) == 0 {
		return CandidateProfile{}, ErrEmptyQueue
	}
	p := q.items[0]
	q.items[0] = CandidateProfile{}
	q.items = q.items[1:]
	return p, nil
}

// RequeueFront puts a rewound candidate back at position 0.
func (q *ProfileQueue) RequeueFront(p CandidateProfile) {
	q.items = append(q.items, CandidateProfile{})
	copy(q.items[1:], q.items)
	q.items[0] = p
}

func (q *ProfileQueue) Len() int { return len(q.items) }

// IDs returns the pending ids in queue order.
func (q *ProfileQueue) IDs() []string {
	ids := make([]string, len(q.items))
	for i, p := range q.items {
		ids[i] = p.ID
	}
	return ids
}

// Contains reports whether id is pending.
func (q *ProfileQueue) Contains(id string) bool {
	for _, p := range q.items {
		if p.ID == id {
			return true
		}
	}
	return false
}
