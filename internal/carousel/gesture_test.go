package carousel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerAxisIsStickyForTheWholeGesture(t *testing.T) {
	var tr Tracker
	tr.Start(0, 0, 90)

	p := tr.Move(5, 10)
	require.False(t, p.Intercept)
	require.Equal(t, AxisVertical, tr.Axis())

	p = tr.Move(200, 12)
	require.False(t, p.Intercept, "vertical gesture must not be intercepted later")
	require.Equal(t, AxisVertical, tr.Axis())

	require.Equal(t, CommitNone, tr.End(true, true))
	require.Equal(t, AxisUnset, tr.Axis())

	tr.Start(0, 0, 90)
	p = tr.Move(20, 1)
	require.True(t, p.Intercept)
	require.Equal(t, 110.0, p.Offset)
}

func TestTrackerTieClassifiesVertical(t *testing.T) {
	var tr Tracker
	tr.Start(10, 10, 0)
	require.False(t, tr.Move(15, 15).Intercept)
	require.Equal(t, AxisVertical, tr.Axis())
}

func TestTrackerPreviewRoundsDelta(t *testing.T) {
	var tr Tracker
	tr.Start(0, 0, -30)
	p := tr.Move(10.5, 0)
	require.Equal(t, 11.0, tr.DeltaX())
	require.Equal(t, -19.0, p.Offset)

	p = tr.Move(-10.5, 0)
	require.Equal(t, -10.0, tr.DeltaX())
	require.Equal(t, -40.0, p.Offset)
}

func TestTrackerCommitThresholds(t *testing.T) {
	cases := []struct {
		dx               float64
		hasPrev, hasNext bool
		want             Commit
	}{
		{dx: 101, hasPrev: true, hasNext: true, want: CommitPrevious},
		{dx: -101, hasPrev: true, hasNext: true, want: CommitNext},
		{dx: 50, hasPrev: true, hasNext: true, want: CommitSnapBack},
		{dx: 100, hasPrev: true, hasNext: true, want: CommitSnapBack},
		{dx: 101, hasPrev: false, hasNext: true, want: CommitSnapBack},
		{dx: -101, hasPrev: true, hasNext: false, want: CommitSnapBack},
	}
	for _, tc := range cases {
		var tr Tracker
		tr.Start(200, 50, 0)
		require.True(t, tr.Move(200+tc.dx, 50).Intercept)
		require.Equal(t, tc.want, tr.End(tc.hasPrev, tc.hasNext), "dx=%v", tc.dx)
		require.False(t, tr.Active())
	}
}

func TestTrackerCustomThreshold(t *testing.T) {
	tr := Tracker{Threshold: 8}
	tr.Start(0, 0, 0)
	tr.Move(-9, 0)
	require.Equal(t, CommitNext, tr.End(true, true))
}

func TestTrackerIgnoresStartDuringClassifiedGesture(t *testing.T) {
	var tr Tracker
	tr.Start(0, 0, 0)
	tr.Move(30, 0)
	tr.Start(500, 500, 999)
	p := tr.Move(40, 0)
	require.Equal(t, 40.0, p.Offset, "second start must not replace the first")
}

func TestTrackerMoveWithoutStart(t *testing.T) {
	var tr Tracker
	require.Equal(t, Preview{}, tr.Move(50, 0))
	require.Equal(t, CommitNone, tr.End(true, true))
}
