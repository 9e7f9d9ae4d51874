package carousel

import "time"

// Item is a child element of the carousel. Items are compared by Key.
type Item interface {
	Key() string
}

// Source is the ordered list of children inside the carousel container.
type Source interface {
	Items() []Item
	// Contains reports whether item is still attached to the container.
	Contains(item Item) bool
}

// Metrics answers computed-style queries about the container and its items.
type Metrics interface {
	// ContainerWidth is the carousel element's own width. Percentages are
	// resolved against ViewportWidth.
	ContainerWidth() Length
	ViewportWidth() float64
	ItemWidth(item Item) Length
	ItemSideMargin(item Item) float64
}

// Surface is the element that gets translated.
type Surface interface {
	// SetTransform translates the strip to offset. A non-zero transition
	// animates the change over that duration.
	SetTransform(offset float64, transition time.Duration)
	// ClearTransition drops transition styling after an animation finished.
	ClearTransition()
}

// Marker flags the selected item, for example with a "selected" attribute.
type Marker interface {
	SetSelected(item Item, selected bool)
}

// SelectedChanged is emitted whenever the selected item changes.
type SelectedChanged struct {
	Index int
	Item  Item
}

// Logger is satisfied by *log.Logger.
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

func sameItem(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}
