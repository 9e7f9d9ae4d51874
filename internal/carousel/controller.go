package carousel

import "time"

// DefaultTransitionDuration is the length of animated navigation.
const DefaultTransitionDuration = 400 * time.Millisecond

// State is the controller's selection and offset state.
type State struct {
	SelectedIndex int
	Selected      Item
	Offset        float64
	ItemWidth     float64
	SideMargin    float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithMarker sets the selection marker.
func WithMarker(m Marker) Option {
	return func(c *Controller) { c.marker = m }
}

// WithPlaceholder sets the predicate identifying placeholder children, such
// as the template slot of a list that has not finished rendering. Placeholders
// are never selected or navigated onto.
func WithPlaceholder(fn func(Item) bool) Option {
	return func(c *Controller) { c.placeholder = fn }
}

// WithTransitionDuration overrides DefaultTransitionDuration.
func WithTransitionDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithCommitThreshold overrides DefaultCommitThreshold.
func WithCommitThreshold(px float64) Option {
	return func(c *Controller) { c.tracker.Threshold = px }
}

// WithLogger enables debug traces.
func WithLogger(l Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns the carousel state. It is not safe for concurrent use; all
// calls are expected on the host's event loop.
type Controller struct {
	source  Source
	metrics Metrics
	surface Surface
	marker  Marker

	placeholder func(Item) bool
	duration    time.Duration
	log         Logger

	state         State
	geometryValid bool
	tracker       Tracker
	frames        FrameQueue
	transitioning bool
	settling      bool
	listeners     []func(SelectedChanged)
}

// New returns a controller. Call Attach once the host's items exist.
func New(source Source, metrics Metrics, surface Surface, opts ...Option) *Controller {
	c := &Controller{
		source:   source,
		metrics:  metrics,
		surface:  surface,
		duration: DefaultTransitionDuration,
		log:      nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnSelectedChanged registers fn for selection changes.
func (c *Controller) OnSelectedChanged(fn func(SelectedChanged)) {
	c.listeners = append(c.listeners, fn)
}

// Attach initialises selection and layout. The host calls it once after the
// carousel's children exist.
func (c *Controller) Attach() {
	c.Reset()
}

// Resize recomputes layout for a new viewport size without animation.
func (c *Controller) Resize() {
	c.adjustLayout()
}

// ContentChanged is called after children were inserted or removed. Selection
// is re-resolved once on the next frame, after the change has settled.
func (c *Controller) ContentChanged() {
	if c.settling {
		return
	}
	c.settling = true
	c.frames.Defer(func() {
		c.settling = false
		c.Reset()
	})
}

// Previous selects the preceding item and returns the selected index.
func (c *Controller) Previous() int {
	c.validate()
	items := c.source.Items()
	pos := c.position(items, c.state.Selected)
	if pos <= 0 || c.isPlaceholder(items[pos-1]) {
		return c.state.SelectedIndex
	}
	c.state.SelectedIndex--
	c.setSelected(items[pos-1])
	c.state.Offset += c.step()
	c.frames.Apply(Transform{Offset: c.state.Offset, Animated: true})
	return c.state.SelectedIndex
}

// Next selects the following item and returns the selected index. It never
// advances onto a placeholder.
func (c *Controller) Next() int {
	c.validate()
	items := c.source.Items()
	pos := c.position(items, c.state.Selected)
	if pos < 0 || pos+1 >= len(items) || c.isPlaceholder(items[pos+1]) {
		return c.state.SelectedIndex
	}
	c.state.SelectedIndex++
	c.setSelected(items[pos+1])
	c.state.Offset -= c.step()
	c.frames.Apply(Transform{Offset: c.state.Offset, Animated: true})
	return c.state.SelectedIndex
}

// Select jumps to the real item at index with an animated transition.
// Indexes outside the real items are ignored.
func (c *Controller) Select(index int) int {
	c.validate()
	items := c.realItems()
	if index < 0 || index >= len(items) || sameItem(items[index], c.state.Selected) {
		return c.state.SelectedIndex
	}
	c.state.SelectedIndex = index
	c.setSelected(items[index])
	c.measure()
	c.frames.Apply(Transform{Offset: c.state.Offset, Animated: true})
	return c.state.SelectedIndex
}

// SelectedIndex returns the selected index.
func (c *Controller) SelectedIndex() int { return c.state.SelectedIndex }

// Selected returns the selected item, or nil.
func (c *Controller) Selected() Item { return c.state.Selected }

// State returns a copy of the controller state.
func (c *Controller) State() State { return c.state }

// Reset re-resolves a missing or stale selection to the first real item,
// recomputes layout and applies the offset without animation.
func (c *Controller) Reset() {
	c.resolveSelection()
	c.adjustLayout()
}

// TouchStart begins a pointer gesture.
func (c *Controller) TouchStart(x, y float64) {
	c.tracker.Start(x, y, c.state.Offset)
}

// TouchMove reports pointer motion. It returns true when the gesture is
// horizontal and the host must suppress its default scroll behaviour.
func (c *Controller) TouchMove(x, y float64) bool {
	p := c.tracker.Move(x, y)
	if p.Intercept {
		c.frames.Apply(Transform{Offset: p.Offset})
	}
	return p.Intercept
}

// TouchEnd finishes the gesture and acts on its commit decision.
func (c *Controller) TouchEnd() Commit {
	var hasPrev, hasNext bool
	if c.tracker.Axis() == AxisHorizontal {
		c.validate()
		hasPrev, hasNext = c.neighbours()
	}
	commit := c.tracker.End(hasPrev, hasNext)
	switch commit {
	case CommitPrevious:
		c.Previous()
	case CommitNext:
		c.Next()
	case CommitSnapBack:
		c.frames.Apply(Transform{Offset: c.state.Offset, Animated: true})
	}
	if commit != CommitNone {
		c.log.Printf("carousel: gesture committed %s at index %d", commit, c.state.SelectedIndex)
	}
	return commit
}

// Gesture exposes the gesture tracker for inspection.
func (c *Controller) Gesture() *Tracker { return &c.tracker }

// NeedsFrame reports whether a style write or deferred task is waiting.
func (c *Controller) NeedsFrame() bool { return !c.frames.Empty() }

// Frame runs one display frame: settled content changes are resolved, then
// the latest pending offset is written to the surface.
func (c *Controller) Frame() {
	c.frames.Run(func(t Transform) {
		var d time.Duration
		if t.Animated {
			d = c.duration
		}
		c.transitioning = d > 0
		c.surface.SetTransform(t.Offset, d)
	})
}

// TransitionEnd is called by the host when an animated transition finished.
func (c *Controller) TransitionEnd() {
	if !c.transitioning {
		return
	}
	c.transitioning = false
	c.surface.ClearTransition()
}

func (c *Controller) validate() {
	if c.state.Selected != nil && c.source.Contains(c.state.Selected) && c.geometryValid {
		return
	}
	c.Reset()
}

func (c *Controller) resolveSelection() {
	items := c.source.Items()
	if sel := c.state.Selected; sel != nil && c.source.Contains(sel) {
		// items before the selection may have been inserted or removed
		if idx := c.realIndex(items, sel); idx >= 0 {
			c.state.SelectedIndex = idx
		}
		return
	}
	c.state.SelectedIndex = 0
	c.setSelected(c.firstReal(items))
}

func (c *Controller) setSelected(item Item) {
	old := c.state.Selected
	if sameItem(old, item) {
		return
	}
	c.state.Selected = item
	if old != nil && c.marker != nil {
		c.marker.SetSelected(old, false)
	}
	if item == nil {
		return
	}
	if c.marker != nil {
		c.marker.SetSelected(item, true)
	}
	ev := SelectedChanged{Index: c.state.SelectedIndex, Item: item}
	c.log.Printf("carousel: selected %q at index %d", item.Key(), ev.Index)
	for _, fn := range c.listeners {
		fn(ev)
	}
}

// measure recomputes geometry and the centered offset for the current index.
func (c *Controller) measure() {
	ref := c.firstReal(c.source.Items())
	if ref == nil {
		l := EmptyLayout()
		c.state.ItemWidth, c.state.SideMargin, c.state.Offset = l.ItemWidth, l.SideMargin, l.Offset
		c.geometryValid = false
		return
	}
	container := c.metrics.ContainerWidth().Resolve(c.metrics.ViewportWidth())
	l := ComputeLayout(container, c.metrics.ItemWidth(ref), c.metrics.ItemSideMargin(ref), c.state.SelectedIndex)
	c.state.ItemWidth, c.state.SideMargin, c.state.Offset = l.ItemWidth, l.SideMargin, l.Offset
	c.geometryValid = true
}

func (c *Controller) adjustLayout() {
	c.measure()
	c.frames.Apply(Transform{Offset: c.state.Offset})
}

func (c *Controller) step() float64 {
	return c.state.ItemWidth + 2*c.state.SideMargin
}

func (c *Controller) neighbours() (hasPrev, hasNext bool) {
	items := c.source.Items()
	pos := c.position(items, c.state.Selected)
	if pos < 0 {
		return false, false
	}
	hasPrev = pos > 0 && !c.isPlaceholder(items[pos-1])
	hasNext = pos+1 < len(items) && !c.isPlaceholder(items[pos+1])
	return hasPrev, hasNext
}

func (c *Controller) isPlaceholder(item Item) bool {
	return c.placeholder != nil && c.placeholder(item)
}

func (c *Controller) position(items []Item, item Item) int {
	if item == nil {
		return -1
	}
	for i, it := range items {
		if sameItem(it, item) {
			return i
		}
	}
	return -1
}

func (c *Controller) realIndex(items []Item, item Item) int {
	n := 0
	for _, it := range items {
		if c.isPlaceholder(it) {
			continue
		}
		if sameItem(it, item) {
			return n
		}
		n++
	}
	return -1
}

func (c *Controller) realItems() []Item {
	var out []Item
	for _, it := range c.source.Items() {
		if !c.isPlaceholder(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Controller) firstReal(items []Item) Item {
	for _, it := range items {
		if !c.isPlaceholder(it) {
			return it
		}
	}
	return nil
}
