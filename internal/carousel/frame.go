package carousel

// Transform is a pending horizontal translation of the strip.
type Transform struct {
	Offset   float64
	Animated bool
}

// FrameQueue batches style writes until the next display frame. It holds a
// single pending transform: applying twice before a frame keeps only the
// latest value. Deferred tasks run at the start of the next frame, before the
// transform is flushed.
type FrameQueue struct {
	pending    Transform
	hasPending bool
	tasks      []func()
}

// Apply schedules t for the next frame, replacing any pending transform.
func (q *FrameQueue) Apply(t Transform) {
	q.pending = t
	q.hasPending = true
}

// Defer runs fn on the next frame.
func (q *FrameQueue) Defer(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Pending returns the transform waiting for the next frame.
func (q *FrameQueue) Pending() (Transform, bool) {
	return q.pending, q.hasPending
}

// Empty reports whether nothing is waiting for a frame.
func (q *FrameQueue) Empty() bool {
	return !q.hasPending && len(q.tasks) == 0
}

// Run executes one frame: deferred tasks first, then the pending transform is
// handed to write. Tasks deferred while running wait for the following frame.
func (q *FrameQueue) Run(write func(Transform)) {
	tasks := q.tasks
	q.tasks = nil
	for _, fn := range tasks {
		fn()
	}
	if !q.hasPending {
		return
	}
	t := q.pending
	q.pending, q.hasPending = Transform{}, false
	write(t)
}
