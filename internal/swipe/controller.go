package swipe

import "time"

// State is the card stack state machine position.
type State uint8

const (
	StateIdle State = iota
	StatePresenting
	StateDeciding
	StateCommitting
	StateRewinding
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePresenting:
		return "presenting"
	case StateDeciding:
		return "deciding"
	case StateCommitting:
		return "committing"
	case StateRewinding:
		return "rewinding"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Options tune a Controller.
type Options struct {
	Thresholds   Thresholds
	CardWidth    float64
	ScreenHeight float64
	// AnimateExits keeps the controller in StateDeciding after a commit until
	// FinishExit is called. The decision itself is recorded immediately.
	AnimateExits bool
	// LowWatermark is the pending count at or below which more candidates
	// are requested.
	LowWatermark int
	Clock        func() time.Time
}

// DefaultOptions sizes the stack for a 360x780 dp screen.
func DefaultOptions() Options {
	const width = 360
	return Options{
		Thresholds:   DefaultThresholds(width),
		CardWidth:    width,
		ScreenHeight: 780,
		LowWatermark: 2,
	}
}

// ReleaseResult describes the outcome of a gesture release.
type ReleaseResult struct {
	Gesture  GestureState
	Decided  bool
	Decision Decision
	// ExitOffset is where the card flies to; zero on snap-back.
	ExitOffset Vector
}

// Controller is the card stack: it shows the queue front, turns gestures and
// action buttons into decisions, and rewinds the last one.
//
// A Controller must be driven from a single goroutine. Listeners run
// synchronously; calls made from inside a listener while a commit or rewind
// is in progress fail with ErrBusy.
type Controller struct {
	opts      Options
	queue     *ProfileQueue
	recorder  *DecisionRecorder
	gesture   *GestureTracker
	listeners []Listener

	state     State
	decided   map[string]CandidateProfile
	departing *CandidateProfile
	exhausted bool
}

// NewController returns a controller in StateIdle with an empty queue.
func NewController(opts Options, listeners ...Listener) *Controller {
	def := DefaultOptions()
	if opts.CardWidth <= 0 {
		opts.CardWidth = def.CardWidth
	}
	if opts.ScreenHeight <= 0 {
		opts.ScreenHeight = def.ScreenHeight
	}
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds(opts.CardWidth)
	}
	return &Controller{
		opts:      opts,
		queue:     NewProfileQueue(),
		recorder:  NewDecisionRecorder(opts.Clock),
		gesture:   NewGestureTracker(opts.Thresholds, opts.CardWidth),
		listeners: listeners,
		state:     StateIdle,
		decided:   make(map[string]CandidateProfile),
	}
}

// Subscribe adds a listener.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Controller) State() State { return c.state }

// Active is the card on top of the stack.
func (c *Controller) Active() (CandidateProfile, bool) { return c.queue.PeekActive() }

// Next is the card rendered underneath the active one.
func (c *Controller) Next() (CandidateProfile, bool) { return c.queue.PeekNext() }

// Departing is the card still animating off screen, if any.
func (c *Controller) Departing() (CandidateProfile, bool) {
	if c.departing == nil {
		return CandidateProfile{}, false
	}
	return *c.departing, true
}

func (c *Controller) History() []Decision { return c.recorder.History() }

func (c *Controller) Pending() int { return c.queue.Len() }

func (c *Controller) CanRewind() bool { return c.recorder.CanRewind() && !c.busy() }

func (c *Controller) Exhausted() bool { return c.exhausted }

// Gesture returns the in-flight gesture, if any.
func (c *Controller) Gesture() (GestureState, bool) { return c.gesture.Active() }

func (c *Controller) Options() Options { return c.opts }

// NeedsMore reports whether the provider should be asked for candidates.
func (c *Controller) NeedsMore() bool {
	return !c.exhausted && c.queue.Len() <= c.opts.LowWatermark
}

// ExcludeIDs is every id the provider must not return again: pending,
// departing and decided candidates.
func (c *Controller) ExcludeIDs() map[string]struct{} {
	out := make(map[string]struct{}, c.queue.Len()+len(c.decided)+1)
	for _, id := range c.queue.IDs() {
		out[id] = struct{}{}
	}
	for id := range c.decided {
		out[id] = struct{}{}
	}
	if c.departing != nil {
		out[c.departing.ID] = struct{}{}
	}
	return out
}

// Enqueue appends candidates from the provider. Candidates whose id is
// already pending or decided are dropped and reported in a *DuplicateError;
// the rest are still enqueued. Enqueueing into an empty stack presents the
// first card.
func (c *Controller) Enqueue(profiles ...CandidateProfile) error {
	if c.state == StateCommitting || c.state == StateRewinding {
		return ErrBusy
	}
	prevActive, prevNext := c.stackIDs()

	var dropped []string
	seen := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		if _, dup := seen[p.ID]; dup || c.known(p.ID) {
			dropped = append(dropped, p.ID)
			continue
		}
		seen[p.ID] = struct{}{}
		c.queue.Enqueue(p)
	}

	if len(seen) > 0 {
		c.exhausted = false
		switch c.state {
		case StateIdle, StateEmpty:
			c.advance()
		case StatePresenting:
			if a, n := c.stackIDs(); a != prevActive || n != prevNext {
				c.emitActive()
			}
		}
	}

	if len(dropped) > 0 {
		return &DuplicateError{IDs: dropped}
	}
	return nil
}

// ProviderExhausted records that no more candidates will arrive. An idle
// stack with nothing pending becomes StateEmpty.
func (c *Controller) ProviderExhausted() {
	c.exhausted = true
	if c.state == StateIdle && c.queue.Len() == 0 {
		c.state = StateEmpty
		c.emit(Event{Type: EventQueueEmpty})
	}
}

// Pass, Like and SuperLike are the action buttons. Each one behaves like a
// gesture released past the threshold in the matching direction.
func (c *Controller) Pass() (Decision, error)      { return c.decide(Pass) }
func (c *Controller) Like() (Decision, error)      { return c.decide(Like) }
func (c *Controller) SuperLike() (Decision, error) { return c.decide(SuperLike) }

// Decide applies kind to the active card.
func (c *Controller) Decide(kind DecisionKind) (Decision, error) {
	return c.decide(kind)
}

// BeginGesture starts tracking a touch on the active card. A second touch
// while one is tracked cancels both and returns ErrGestureInterrupted.
func (c *Controller) BeginGesture() error {
	if err := c.ready(); err != nil {
		return err
	}
	active, _ := c.queue.PeekActive()
	return c.gesture.Begin(active.ID)
}

// Drag feeds one gesture sample, starting a gesture when none is tracked,
// and returns the visual preview. It never records anything.
func (c *Controller) Drag(translation, velocity Vector) (Preview, error) {
	if err := c.ready(); err != nil {
		return Preview{}, err
	}
	if _, ok := c.gesture.Active(); !ok {
		if err := c.BeginGesture(); err != nil {
			return Preview{}, err
		}
	}
	return c.gesture.Move(translation, velocity)
}

// Release ends the gesture. Past a threshold the active card is decided;
// otherwise the card snaps back and nothing is recorded.
func (c *Controller) Release(velocity Vector) (ReleaseResult, error) {
	st, kind, ok, err := c.gesture.Release(velocity)
	if err != nil {
		return ReleaseResult{}, err
	}
	res := ReleaseResult{Gesture: st}
	if err := c.ready(); err != nil {
		return res, err
	}
	if active, _ := c.queue.PeekActive(); active.ID != st.CandidateID {
		// The card under the finger changed mid-gesture; treat as cancelled.
		return res, ErrGestureInterrupted
	}
	if !ok {
		return res, nil
	}

	d, err := c.decide(kind)
	if err != nil {
		return res, err
	}
	res.Decided = true
	res.Decision = d
	res.ExitOffset = ExitOffset(kind, c.opts.CardWidth, c.opts.ScreenHeight)
	return res, nil
}

// CancelGesture drops the in-flight gesture without a decision.
func (c *Controller) CancelGesture() bool {
	return c.gesture.Cancel()
}

// FinishExit ends the exit animation of the departing card and shows the
// next one. It reports whether an animation was pending.
func (c *Controller) FinishExit() bool {
	if c.state != StateDeciding || c.departing == nil {
		return false
	}
	c.settle()
	return true
}

// Rewind undoes the most recent decision and puts its candidate back on top.
func (c *Controller) Rewind() (Decision, error) {
	if c.busy() {
		return Decision{}, ErrBusy
	}
	d, err := c.recorder.RewindLast()
	if err != nil {
		return Decision{}, err
	}

	c.state = StateRewinding
	c.gesture.Cancel()
	p, ok := c.decided[d.CandidateID]
	if !ok {
		p = CandidateProfile{ID: d.CandidateID}
	}
	delete(c.decided, d.CandidateID)
	c.queue.RequeueFront(p)
	c.emit(Event{Type: EventRewound, Decision: &d, Candidate: &p})

	c.state = StatePresenting
	c.emitActive()
	return d, nil
}

func (c *Controller) decide(kind DecisionKind) (Decision, error) {
	if !kind.Valid() {
		return Decision{}, ErrUnknownDecision
	}
	if err := c.ready(); err != nil {
		return Decision{}, err
	}
	c.gesture.Cancel()

	c.state = StateDeciding
	p, err := c.queue.Dequeue()
	if err != nil {
		c.state = StateIdle
		return Decision{}, err
	}
	c.departing = &p

	c.state = StateCommitting
	c.recorder.Record(p.ID, kind)
	c.decided[p.ID] = p
	d, _ := c.recorder.Last()
	exit := ExitOffset(kind, c.opts.CardWidth, c.opts.ScreenHeight)
	c.emit(Event{Type: EventDecisionCommitted, Decision: &d, Candidate: &p, ExitOffset: &exit})

	if c.opts.AnimateExits {
		c.state = StateDeciding
		return d, nil
	}
	c.settle()
	return d, nil
}

// settle finishes a commit: the departing card is gone and the next one is
// picked up.
func (c *Controller) settle() {
	c.departing = nil
	c.state = StateIdle
	c.advance()
}

// advance moves an idle stack to Presenting or Empty.
func (c *Controller) advance() {
	if c.queue.Len() > 0 {
		c.state = StatePresenting
		c.emitActive()
	} else if c.exhausted {
		c.state = StateEmpty
		c.emit(Event{Type: EventQueueEmpty})
		return
	} else {
		c.state = StateIdle
	}
	if c.NeedsMore() {
		c.emit(Event{Type: EventQueueLow, Pending: c.queue.Len()})
	}
}

// ready checks that the active card can take input.
func (c *Controller) ready() error {
	switch c.state {
	case StatePresenting:
		return nil
	case StateDeciding, StateCommitting, StateRewinding:
		return ErrBusy
	default:
		return ErrEmptyQueue
	}
}

func (c *Controller) busy() bool {
	return c.state == StateDeciding || c.state == StateCommitting || c.state == StateRewinding
}

func (c *Controller) known(id string) bool {
	if _, ok := c.decided[id]; ok {
		return true
	}
	if c.departing != nil && c.departing.ID == id {
		return true
	}
	return c.queue.Contains(id)
}

func (c *Controller) stackIDs() (string, string) {
	a, _ := c.queue.PeekActive()
	n, _ := c.queue.PeekNext()
	return a.ID, n.ID
}

func (c *Controller) emitActive() {
	e := Event{Type: EventActiveChanged}
	if a, ok := c.queue.PeekActive(); ok {
		e.Active = &a
	}
	if n, ok := c.queue.PeekNext(); ok {
		e.Next = &n
	}
	c.emit(e)
}

func (c *Controller) emit(e Event) {
	for _, l := range c.listeners {
		l.OnEvent(e)
	}
}
