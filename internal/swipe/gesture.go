package swipe

import "math"

const (
	// DistanceRatio is the share of the card width a drag must travel.
	DistanceRatio = 0.3
	// DefaultVelocityThreshold is the release speed, in dp/s, that decides a
	// swipe regardless of distance.
	DefaultVelocityThreshold = 1000.0

	maxRotationDeg = 10.0
	exitOvershoot  = 1.5

	nextCardMinScale   = 0.9
	nextCardMaxLift    = 30.0
	nextCardMinOpacity = 0.6
)

// Vector is a 2D value in device-independent units. Negative Y points up.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sample is the gesture reading taken at release.
type Sample struct {
	Translation Vector
	Velocity    Vector
}

// Thresholds configure classification. A non-positive value disables the
// corresponding criterion.
type Thresholds struct {
	Distance float64
	Velocity float64
}

// DefaultThresholds derives thresholds from the rendered card width.
func DefaultThresholds(cardWidth float64) Thresholds {
	return Thresholds{
		Distance: cardWidth * DistanceRatio,
		Velocity: DefaultVelocityThreshold,
	}
}

// Classify maps a released gesture to a decision. Horizontal movement wins
// over vertical; pass is checked before like. The bool is false when the card
// should snap back.
func Classify(s Sample, th Thresholds) (DecisionKind, bool) {
	tx, ty, vx := s.Translation.X, s.Translation.Y, s.Velocity.X
	dist := th.Distance > 0
	vel := th.Velocity > 0

	switch {
	case (dist && tx <= -th.Distance) || (vel && vx <= -th.Velocity):
		return Pass, true
	case (dist && tx >= th.Distance) || (vel && vx >= th.Velocity):
		return Like, true
	case dist && ty <= -th.Distance:
		return SuperLike, true
	}
	return 0, false
}

// Preview is the visual feedback for a card being dragged. It is a pure
// function of the translation.
type Preview struct {
	Offset      Vector       `json:"offset"`
	RotationDeg float64      `json:"rotation_deg"`
	Intent      DecisionKind `json:"intent,omitempty"` // zero when a release would snap back
	Progress    float64      `json:"progress"`         // 0..1 toward the distance threshold

	NextScale   float64 `json:"next_scale"`
	NextLift    float64 `json:"next_lift"`
	NextOpacity float64 `json:"next_opacity"`
}

// PreviewFor computes the drag preview for the active card and the card
// underneath it.
func PreviewFor(t Vector, cardWidth float64, th Thresholds) Preview {
	p := Preview{Offset: t, NextScale: nextCardMinScale, NextLift: nextCardMaxLift, NextOpacity: nextCardMinOpacity}
	if cardWidth <= 0 {
		return p
	}

	p.RotationDeg = t.X / (cardWidth / 2) * maxRotationDeg

	reveal := clamp01(math.Abs(t.X) / cardWidth)
	p.NextScale = lerp(nextCardMinScale, 1, reveal)
	p.NextLift = lerp(nextCardMaxLift, 0, reveal)
	p.NextOpacity = lerp(nextCardMinOpacity, 1, reveal)

	if th.Distance > 0 {
		p.Progress = clamp01(math.Max(math.Abs(t.X), -t.Y) / th.Distance)
	}
	if kind, ok := Classify(Sample{Translation: t}, Thresholds{Distance: th.Distance}); ok {
		p.Intent = kind
	}
	return p
}

// ExitOffset is where a decided card flies to.
func ExitOffset(kind DecisionKind, cardWidth, screenHeight float64) Vector {
	switch kind {
	case Pass:
		return Vector{X: -cardWidth * exitOvershoot}
	case Like:
		return Vector{X: cardWidth * exitOvershoot}
	case SuperLike:
		return Vector{Y: -screenHeight}
	}
	return Vector{}
}

// GestureState is the transient state of one drag on one card.
type GestureState struct {
	CandidateID string `json:"candidate_id"`
	Translation Vector `json:"translation"`
	Velocity    Vector `json:"velocity"`
}

// GestureTracker owns at most one in-flight gesture. The state is destroyed
// on release, cancel, or interruption.
type GestureTracker struct {
	thresholds Thresholds
	cardWidth  float64
	state      *GestureState
}

func NewGestureTracker(th Thresholds, cardWidth float64) *GestureTracker {
	return &GestureTracker{thresholds: th, cardWidth: cardWidth}
}

// Begin starts a gesture on the given card. A Begin while another gesture is
// in flight is a second touch: both are dropped and ErrGestureInterrupted is
// returned.
func (g *GestureTracker) Begin(candidateID string) error {
	if g.state != nil {
		g.state = nil
		return ErrGestureInterrupted
	}
	g.state = &GestureState{CandidateID: candidateID}
	return nil
}

// Move updates the in-flight gesture and returns its preview.
func (g *GestureTracker) Move(translation, velocity Vector) (Preview, error) {
	if g.state == nil {
		return Preview{}, ErrNoGesture
	}
	g.state.Translation = translation
	g.state.Velocity = velocity
	return PreviewFor(translation, g.cardWidth, g.thresholds), nil
}

// Release classifies the gesture with the final velocity and ends it.
func (g *GestureTracker) Release(velocity Vector) (GestureState, DecisionKind, bool, error) {
	if g.state == nil {
		return GestureState{}, 0, false, ErrNoGesture
	}
	st := *g.state
	st.Velocity = velocity
	g.state = nil
	kind, ok := Classify(Sample{Translation: st.Translation, Velocity: st.Velocity}, g.thresholds)
	return st, kind, ok, nil
}

// Cancel discards the in-flight gesture. It reports whether one existed.
func (g *GestureTracker) Cancel() bool {
	had := g.state != nil
	g.state = nil
	return had
}

// Active returns a copy of the in-flight gesture.
func (g *GestureTracker) Active() (GestureState, bool) {
	if g.state == nil {
		return GestureState{}, false
	}
	return *g.state, true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
