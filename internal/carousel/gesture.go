package carousel

import "math"

// DefaultCommitThreshold is the horizontal drag distance past which a gesture
// commits to the neighbouring item instead of snapping back.
const DefaultCommitThreshold = 100.0

// Axis is the direction a gesture was classified as.
type Axis uint8

const (
	AxisUnset Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unset"
	}
}

// Commit is the decision taken when a gesture ends.
type Commit uint8

const (
	// CommitNone is returned for gestures that never went horizontal.
	CommitNone Commit = iota
	// CommitSnapBack returns to the offset held before the gesture.
	CommitSnapBack
	CommitPrevious
	CommitNext
)

func (c Commit) String() string {
	switch c {
	case CommitSnapBack:
		return "snap-back"
	case CommitPrevious:
		return "previous"
	case CommitNext:
		return "next"
	default:
		return "none"
	}
}

// Preview is the result of a pointer move. When Intercept is true the host
// must suppress its default scrolling and show Offset immediately.
type Preview struct {
	Intercept bool
	Offset    float64
}

// Tracker follows a single pointer gesture. The axis is classified on the
// first move and stays fixed until the gesture ends.
type Tracker struct {
	// Threshold overrides DefaultCommitThreshold when positive.
	Threshold float64

	active         bool
	axis           Axis
	startX, startY float64
	deltaX         float64
	base           float64
}

// Start begins tracking at (x, y). offset is the strip offset before the
// gesture. A start that arrives while a classified gesture is in progress
// is ignored.
func (t *Tracker) Start(x, y, offset float64) {
	if t.active && t.axis != AxisUnset {
		return
	}
	t.active = true
	t.startX, t.startY = x, y
	t.deltaX = 0
	t.base = offset
}

// Move reports the pointer at (x, y).
func (t *Tracker) Move(x, y float64) Preview {
	if !t.active {
		return Preview{}
	}
	if t.axis == AxisUnset {
		if math.Abs(x-t.startX) > math.Abs(y-t.startY) {
			t.axis = AxisHorizontal
		} else {
			t.axis = AxisVertical
		}
	}
	if t.axis != AxisHorizontal {
		return Preview{}
	}
	t.deltaX = roundHalfUp(x - t.startX)
	return Preview{Intercept: true, Offset: t.deltaX + t.base}
}

// End finishes the gesture. hasPrevious and hasNext tell whether a navigable
// neighbour exists on either side of the selected item.
func (t *Tracker) End(hasPrevious, hasNext bool) Commit {
	axis, dx := t.axis, t.deltaX
	t.active = false
	t.axis = AxisUnset
	t.deltaX = 0

	if axis != AxisHorizontal {
		return CommitNone
	}
	th := t.threshold()
	switch {
	case dx > th && hasPrevious:
		return CommitPrevious
	case dx < -th && hasNext:
		return CommitNext
	default:
		return CommitSnapBack
	}
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool { return t.active }

// Axis returns the classified axis of the current gesture.
func (t *Tracker) Axis() Axis { return t.axis }

// DeltaX returns the rounded horizontal travel of the current gesture.
func (t *Tracker) DeltaX() float64 { return t.deltaX }

func (t *Tracker) threshold() float64 {
	if t.Threshold > 0 {
		return t.Threshold
	}
	return DefaultCommitThreshold
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
