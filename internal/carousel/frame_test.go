package carousel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameQueueCoalescesWrites(t *testing.T) {
	var q FrameQueue
	require.True(t, q.Empty())

	q.Apply(Transform{Offset: 10, Animated: true})
	q.Apply(Transform{Offset: 20})

	var writes []Transform
	q.Run(func(tr Transform) { writes = append(writes, tr) })
	require.Equal(t, []Transform{{Offset: 20}}, writes)
	require.True(t, q.Empty())

	q.Run(func(tr Transform) { writes = append(writes, tr) })
	require.Len(t, writes, 1)
}

func TestFrameQueueRunsTasksBeforeWrite(t *testing.T) {
	var q FrameQueue
	var order []string
	q.Apply(Transform{Offset: 1})
	q.Defer(func() {
		order = append(order, "task")
		q.Apply(Transform{Offset: 2})
		q.Defer(func() { order = append(order, "later") })
	})

	q.Run(func(tr Transform) {
		order = append(order, "write")
		require.Equal(t, 2.0, tr.Offset)
	})
	require.Equal(t, []string{"task", "write"}, order)
	require.False(t, q.Empty())

	q.Run(func(Transform) {})
	require.Equal(t, []string{"task", "write", "later"}, order)
}
