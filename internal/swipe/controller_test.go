package swipe_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

func newController(t *testing.T, opts swipe.Options) (*swipe.Controller, *swipe.EventBuffer) {
	t.Helper()
	buf := &swipe.EventBuffer{}
	if opts.CardWidth == 0 {
		opts.CardWidth = 400
	}
	opts.Clock = fixedClock()
	return swipe.NewController(opts, buf), buf
}

func activeID(t *testing.T, c *swipe.Controller) string {
	t.Helper()
	p, ok := c.Active()
	require.True(t, ok, "expected an active card")
	return p.ID
}

func types(events []swipe.Event) []swipe.EventType {
	out := make([]swipe.EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func TestController_IdleToPresenting(t *testing.T) {
	c, buf := newController(t, swipe.Options{})
	assert.Equal(t, swipe.StateIdle, c.State())
	assert.True(t, c.NeedsMore())

	require.NoError(t, c.Enqueue(profiles("A", "B", "C")...))
	assert.Equal(t, swipe.StatePresenting, c.State())
	assert.Equal(t, "A", activeID(t, c))

	events := buf.Drain()
	require.NotEmpty(t, events)
	assert.Equal(t, swipe.EventActiveChanged, events[0].Type)
	assert.Equal(t, "A", events[0].Active.ID)
	assert.Equal(t, "B", events[0].Next.ID)
}

func TestController_Scenario(t *testing.T) {
	c, buf := newController(t, swipe.Options{})
	require.NoError(t, c.Enqueue(profiles("A", "B", "C")...))

	d, err := c.Like()
	require.NoError(t, err)
	assert.Equal(t, swipe.Decision{CandidateID: "A", Kind: swipe.Like, Sequence: 1, Timestamp: fixedClock()()}, d)
	assert.Equal(t, "B", activeID(t, c))

	_, err = c.Rewind()
	require.NoError(t, err)
	assert.Equal(t, "A", activeID(t, c))
	assert.Empty(t, c.History())

	d, err = c.Pass()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), d.Sequence)
	assert.Equal(t, "B", activeID(t, c))

	d, err = c.SuperLike()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), d.Sequence)
	assert.Equal(t, "C", activeID(t, c))

	h := c.History()
	require.Len(t, h, 2)
	assert.Equal(t, "A", h[0].CandidateID)
	assert.Equal(t, swipe.Pass, h[0].Kind)
	assert.Equal(t, uint64(1), h[0].Sequence)
	assert.Equal(t, "B", h[1].CandidateID)
	assert.Equal(t, swipe.SuperLike, h[1].Kind)
	assert.Equal(t, uint64(2), h[1].Sequence)
	assert.Equal(t, 1, c.Pending())

	var commits int
	for _, e := range buf.Drain() {
		if e.Type == swipe.EventDecisionCommitted {
			commits++
		}
	}
	assert.Equal(t, 3, commits)
}

func TestController_NCommitsForNDecisiveGestures(t *testing.T) {
	const n = 25
	c, buf := newController(t, swipe.Options{})
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("c%02d", i)
	}
	require.NoError(t, c.Enqueue(profiles(ids...)...))
	c.ProviderExhausted()

	swipes := []swipe.Vector{{X: 200}, {X: -200}, {Y: -200}}
	for i := 0; i < n; i++ {
		_, err := c.Drag(swipes[i%3], swipe.Vector{})
		require.NoError(t, err)
		res, err := c.Release(swipe.Vector{})
		require.NoError(t, err)
		require.True(t, res.Decided)
	}

	var committed []string
	for _, e := range buf.Drain() {
		if e.Type == swipe.EventDecisionCommitted {
			committed = append(committed, e.Candidate.ID)
		}
	}
	assert.Equal(t, ids, committed)
	assert.Equal(t, swipe.StateEmpty, c.State())
}

func TestController_RewindTwiceFails(t *testing.T) {
	c, _ := newController(t, swipe.Options{})
	require.NoError(t, c.Enqueue(profiles("A", "B", "C")...))
	_, _ = c.Like()
	_, _ = c.Pass()

	_, err := c.Rewind()
	require.NoError(t, err)
	assert.Len(t, c.History(), 1)

	_, err = c.Rewind()
	assert.ErrorIs(t, err, swipe.ErrNothingToRewind)
	assert.Len(t, c.History(), 1)
	assert.Equal(t, "B", activeID(t, c))
	assert.Equal(t, swipe.StatePresenting, c.State())
}

func TestController_RewindWithoutHistory(t *testing.T) {
	c, buf := newController(t, swipe.Options{})
	require.NoError(t, c.Enqueue(profiles("A")...))
	buf.Drain()

	_, err := c.Rewind()
	assert.ErrorIs(t, err, swipe.ErrNothingToRewind)
	assert.Equal(t, swipe.StatePresenting, c.State())
	assert.Empty(t, buf.Drain())
}

func TestController_RewindIsInverseOfCommit(t *testing.T) {
	c, buf := newController(t, swipe.Options{})
	require.NoError(t, c.Enqueue(profiles("A", "B")...))
	before := len(c.History())
	buf.Drain()

	_, err := c.SuperLike()
	require.NoError(t, err)
	d, err := c.Rewind()
	require.NoError(t, err)
	assert.Equal(t, swipe.SuperLike, d.Kind)
	assert.Equal(t, "A", activeID(t, c))
	assert.Len(t, c.History(), before)

	got := types(buf.Drain())
	assert.Contains(t, got, swipe.EventRewound)
	assert.Equal(t, swipe.EventActiveChanged, got[len(got)-1])
}

func TestController_SnapBackKeepsCard(t *testing.T) {
	c, buf := newController(t, swipe.Options{})
	require.NoError(t, c.Enqueue(profiles("A", "B")...))
	buf.Drain()

	p, err := c.Drag(swipe.Vector{X: 50}, swipe.Vector{X: 100})
	require.NoError(t, err)
	assert.Zero(t, p.Intent)

	res, err := c.Release(swipe.Vector{X: 100})
	require.NoError(t, err)
	assert.False(t, res.Decided)
	assert.Equal(t, swipe.StatePresenting, c.State())
	assert.Equal(t, "A", activeID(t, c))
	assert.Empty(t, c.History())
	assert.Empty(t, buf.Drain())
}

func TestController_CancelledGestureRecordsNothing(t *testing.T) {
	c, _ := newController(t, swipe.Options{})
	require.NoError(t, c.Enqueue(profiles("A", "B")...))

	_, err := c.Drag(swipe.Vector{X: 350}, swipe.Vector{X: 2000})
	require.NoError(t, err)
	assert.True(t, c.CancelGesture())

	_, err = c.Release(swipe.Vector{X: 2000})
	assert.ErrorIs(t, err, swipe.ErrNoGesture)
	assert.Empty(t, c.History())
	assert.Equal(t, "A", activeID(t, c))
}

func TestController_SecondTouchCancels(t *testing.T) {
	c, _ := newController(t, swipe.Options{})
	require.NoError(t, c.Enqueue(profiles("A", "B")...))

	_, err := c.Drag(swipe.Vector{X: 350}, swipe.Vector{})
	require.NoError(t, err)
	assert.ErrorIs(t, c.BeginGesture(), swipe.ErrGestureInterrupted)

	_, ok := c.Gesture()
	assert.False(t, ok)
	assert.Empty(t, c.History())
	assert.Equal(t, "A", activeID(t, c))
}

func TestController_AnimatedExitDebounces(t *testing.T) {
	c, _ := newController(t, swipe.Options{AnimateExits: true})
	require.NoError(t, c.Enqueue(profiles("A", "B", "C")...))

	_, err := c.Like()
	require.NoError(t, err)
	assert.Equal(t, swipe.StateDeciding, c.State())
	assert.Len(t, c.History(), 1, "data is committed before the animation ends")

	departing, ok := c.Departing()
	require.True(t, ok)
	assert.Equal(t, "A", departing.ID)

	_, err = c.Like()
	assert.ErrorIs(t, err, swipe.ErrBusy)
	_, err = c.Rewind()
	assert.ErrorIs(t, err, swipe.ErrBusy)
	_, err = c.Drag(swipe.Vector{X: 10}, swipe.Vector{})
	assert.ErrorIs(t, err, swipe.ErrBusy)
	assert.Len(t, c.History(), 1)

	assert.True(t, c.FinishExit())
	assert.False(t, c.FinishExit())
	assert.Equal(t, swipe.StatePresenting, c.State())
	assert.Equal(t, "B", activeID(t, c))
}

func TestController_EmptyAndRewindFromEmpty(t *testing.T) {
	c, buf := newController(t, swipe.Options{})
	require.NoError(t, c.Enqueue(profiles("A")...))
	c.ProviderExhausted()

	_, err := c.Pass()
	require.NoError(t, err)
	assert.Equal(t, swipe.StateEmpty, c.State())
	assert.Contains(t, types(buf.Drain()), swipe.EventQueueEmpty)

	_, err = c.Like()
	assert.ErrorIs(t, err, swipe.ErrEmptyQueue)
	assert.Equal(t, swipe.StateEmpty, c.State())

	_, err = c.Rewind()
	require.NoError(t, err)
	assert.Equal(t, swipe.StatePresenting, c.State())
	assert.Equal(t, "A", activeID(t, c))
}

func TestController_ExhaustedWhileIdle(t *testing.T) {
	c, buf := newController(t, swipe.Options{})
	c.ProviderExhausted()
	assert.Equal(t, swipe.StateEmpty, c.State())
	assert.Equal(t, []swipe.EventType{swipe.EventQueueEmpty}, types(buf.Drain()))
	assert.False(t, c.NeedsMore())
}

func TestController_DuplicateCandidatesDropped(t *testing.T) {
	c, _ := newController(t, swipe.Options{})
	require.NoError(t, c.Enqueue(profiles("A", "B")...))
	_, err := c.Like()
	require.NoError(t, err)

	err = c.Enqueue(profiles("A", "B", "C", "C")...)
	var dupErr *swipe.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.ErrorIs(t, err, swipe.ErrDuplicateCandidate)
	assert.Equal(t, []string{"A", "B", "C"}, dupErr.IDs)
	assert.Equal(t, 2, c.Pending())

	exclude := c.ExcludeIDs()
	assert.Contains(t, exclude, "A")
	assert.Contains(t, exclude, "B")
	assert.Contains(t, exclude, "C")
}

func TestController_QueueLowSignalled(t *testing.T) {
	c, buf := newController(t, swipe.Options{LowWatermark: 1})
	require.NoError(t, c.Enqueue(profiles("A", "B", "C")...))
	assert.False(t, c.NeedsMore())
	buf.Drain()

	_, _ = c.Like()
	assert.NotContains(t, types(buf.Drain()), swipe.EventQueueLow)
	_, _ = c.Like()
	assert.Contains(t, types(buf.Drain()), swipe.EventQueueLow)
	assert.True(t, c.NeedsMore())
}

func TestController_ListenerReentryIsBusy(t *testing.T) {
	c, _ := newController(t, swipe.Options{})
	var reentry error
	c.Subscribe(swipe.ListenerFunc(func(e swipe.Event) {
		if e.Type == swipe.EventDecisionCommitted {
			_, reentry = c.Like()
		}
	}))
	require.NoError(t, c.Enqueue(profiles("A", "B")...))

	_, err := c.Like()
	require.NoError(t, err)
	assert.ErrorIs(t, reentry, swipe.ErrBusy)
	assert.Len(t, c.History(), 1)
}

func TestController_ActionsWithoutCards(t *testing.T) {
	c, _ := newController(t, swipe.Options{})

	_, err := c.Like()
	assert.ErrorIs(t, err, swipe.ErrEmptyQueue)
	_, err = c.Drag(swipe.Vector{X: 10}, swipe.Vector{})
	assert.ErrorIs(t, err, swipe.ErrEmptyQueue)
	_, err = c.Decide(swipe.DecisionKind(9))
	assert.ErrorIs(t, err, swipe.ErrUnknownDecision)
	assert.Equal(t, swipe.StateIdle, c.State())
}
