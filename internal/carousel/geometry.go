package carousel

import (
	"fmt"
	"strconv"
	"strings"
)

// Length is a computed width, either in pixels or relative to a parent width.
type Length struct {
	Value   float64
	Percent bool
}

// Px returns an absolute length.
func Px(v float64) Length { return Length{Value: v} }

// Percent returns a length relative to the parent width.
func Percent(v float64) Length { return Length{Value: v, Percent: true} }

// Resolve converts l to pixels against the given parent width.
func (l Length) Resolve(parent float64) float64 {
	if l.Percent {
		return l.Value * parent / 100
	}
	return l.Value
}

func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Percent {
		return v + "%"
	}
	return v + "px"
}

// ParseLength parses "60%", "40px" or a bare number of pixels.
func ParseLength(s string) (Length, error) {
	raw := strings.TrimSpace(s)
	pct := strings.HasSuffix(raw, "%")
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(raw, "%"), "px"))
	if raw == "" {
		return Length{}, fmt.Errorf("parse length %q: empty", s)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Length{}, fmt.Errorf("parse length %q: %w", s, err)
	}
	if v < 0 {
		return Length{}, fmt.Errorf("parse length %q: negative", s)
	}
	return Length{Value: v, Percent: pct}, nil
}

// Layout is the geometry snapshot taken on a layout event together with the
// offset that centers the selected item. Valid is false when there was no item
// to measure; ItemWidth and SideMargin are meaningless in that case.
type Layout struct {
	ItemWidth  float64
	SideMargin float64
	Offset     float64
	Valid      bool
}

// Step is the distance between the left edges of two adjacent items.
func (l Layout) Step() float64 {
	return l.ItemWidth + 2*l.SideMargin
}

// EmptyLayout is the degenerate layout used while there are no items.
func EmptyLayout() Layout { return Layout{} }

// ComputeLayout centers item number selected inside a container of the given
// width. Every preceding item contributes its width and both margins, and the
// first item's leading margin is subtracted once more.
func ComputeLayout(container float64, itemWidth Length, sideMargin float64, selected int) Layout {
	w := itemWidth.Resolve(container)
	return Layout{
		ItemWidth:  w,
		SideMargin: sideMargin,
		Offset:     (container-w)/2 - float64(selected)*(w+2*sideMargin) - sideMargin,
		Valid:      true,
	}
}
