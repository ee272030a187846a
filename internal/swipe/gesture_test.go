package swipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

var th = swipe.Thresholds{Distance: 100, Velocity: 1000}

func classify(tx, ty, vx float64) (swipe.DecisionKind, bool) {
	return swipe.Classify(swipe.Sample{
		Translation: swipe.Vector{X: tx, Y: ty},
		Velocity:    swipe.Vector{X: vx},
	}, th)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		tx, ty, vx float64
		want       swipe.DecisionKind
		decided    bool
	}{
		{"left by distance", -100, 0, 0, swipe.Pass, true},
		{"left by velocity", -10, 0, -1000, swipe.Pass, true},
		{"right by distance", 100, 0, 0, swipe.Like, true},
		{"right by velocity", 5, 0, 1500, swipe.Like, true},
		{"up", 20, -100, 0, swipe.SuperLike, true},
		{"short drag snaps back", 99, -99, 999, 0, false},
		{"downward drag snaps back", 0, 300, 0, 0, false},
		{"left flick beats right distance", 150, 0, -1200, swipe.Pass, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classify(tt.tx, tt.ty, tt.vx)
			assert.Equal(t, tt.decided, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_HorizontalWinsTie(t *testing.T) {
	for i := 0; i < 10; i++ {
		got, ok := classify(th.Distance, -th.Distance, 0)
		require.True(t, ok)
		assert.Equal(t, swipe.Like, got)
	}
}

func TestClassify_MonotonicInDistance(t *testing.T) {
	crossed := false
	for x := 0.0; x <= 400; x += 0.5 {
		got, ok := classify(x, 0, 0)
		if crossed {
			require.True(t, ok, "flapped back at x=%v", x)
			require.Equal(t, swipe.Like, got)
		}
		if ok {
			crossed = true
		}
	}
	assert.True(t, crossed)
}

func TestDefaultThresholds(t *testing.T) {
	got := swipe.DefaultThresholds(400)
	assert.InDelta(t, 120, got.Distance, 1e-9)
	assert.Equal(t, swipe.DefaultVelocityThreshold, got.Velocity)
}

func TestPreviewFor(t *testing.T) {
	const width = 400.0
	th := swipe.DefaultThresholds(width)

	rest := swipe.PreviewFor(swipe.Vector{}, width, th)
	assert.Zero(t, rest.RotationDeg)
	assert.InDelta(t, 0.9, rest.NextScale, 1e-9)
	assert.InDelta(t, 30, rest.NextLift, 1e-9)
	assert.InDelta(t, 0.6, rest.NextOpacity, 1e-9)
	assert.Zero(t, rest.Intent)

	half := swipe.PreviewFor(swipe.Vector{X: width / 2}, width, th)
	assert.InDelta(t, 10, half.RotationDeg, 1e-9)
	assert.InDelta(t, 0.95, half.NextScale, 1e-9)
	assert.Equal(t, swipe.Like, half.Intent)
	assert.InDelta(t, 1, half.Progress, 1e-9)

	left := swipe.PreviewFor(swipe.Vector{X: -width / 2}, width, th)
	assert.InDelta(t, -10, left.RotationDeg, 1e-9)
	assert.Equal(t, swipe.Pass, left.Intent)

	far := swipe.PreviewFor(swipe.Vector{X: 3 * width}, width, th)
	assert.InDelta(t, 1, far.NextScale, 1e-9)
	assert.InDelta(t, 0, far.NextLift, 1e-9)

	// idempotent
	assert.Equal(t, half, swipe.PreviewFor(swipe.Vector{X: width / 2}, width, th))
}

func TestExitOffset(t *testing.T) {
	assert.Equal(t, swipe.Vector{X: -600}, swipe.ExitOffset(swipe.Pass, 400, 800))
	assert.Equal(t, swipe.Vector{X: 600}, swipe.ExitOffset(swipe.Like, 400, 800))
	assert.Equal(t, swipe.Vector{Y: -800}, swipe.ExitOffset(swipe.SuperLike, 400, 800))
}

func TestGestureTracker_Lifecycle(t *testing.T) {
	g := swipe.NewGestureTracker(th, 400)

	_, err := g.Move(swipe.Vector{X: 1}, swipe.Vector{})
	assert.ErrorIs(t, err, swipe.ErrNoGesture)

	require.NoError(t, g.Begin("A"))
	_, err = g.Move(swipe.Vector{X: 150}, swipe.Vector{X: 10})
	require.NoError(t, err)

	st, kind, ok, err := g.Release(swipe.Vector{X: 20})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, swipe.Like, kind)
	assert.Equal(t, "A", st.CandidateID)
	assert.Equal(t, swipe.Vector{X: 20}, st.Velocity)

	_, active := g.Active()
	assert.False(t, active, "state is destroyed on release")
}

func TestGestureTracker_SecondTouchInterrupts(t *testing.T) {
	g := swipe.NewGestureTracker(th, 400)
	require.NoError(t, g.Begin("A"))
	_, _ = g.Move(swipe.Vector{X: 300}, swipe.Vector{})

	assert.ErrorIs(t, g.Begin("A"), swipe.ErrGestureInterrupted)
	_, _, _, err := g.Release(swipe.Vector{})
	assert.ErrorIs(t, err, swipe.ErrNoGesture)
	assert.False(t, g.Cancel())
}
