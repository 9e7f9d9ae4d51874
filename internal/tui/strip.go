package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"honnef.co/go/curve"

	"github.com/jask/fluidcarousel/internal/carousel"
)

// strip is the translated row of cards. It receives the controller's style
// writes and plays animated transitions against its clock.
type strip struct {
	now func() time.Time

	pos        float64
	from, to   float64
	start      time.Time
	transition time.Duration
	animating  bool

	selected string
}

func newStrip(now func() time.Time) *strip {
	if now == nil {
		now = time.Now
	}
	return &strip{now: now}
}

// SetTransform starts from wherever the strip is drawn right now, so a new
// write interrupts a running transition without a jump.
func (s *strip) SetTransform(offset float64, transition time.Duration) {
	now := s.now()
	s.pos = s.position(now)
	s.transition = transition
	if transition <= 0 {
		s.pos, s.to, s.animating = offset, offset, false
		return
	}
	s.from, s.to, s.start, s.animating = s.pos, offset, now, true
}

// ClearTransition drops the transition. A transition still in flight settles
// on its target.
func (s *strip) ClearTransition() {
	if s.animating {
		s.pos, s.animating = s.to, false
	}
	s.transition = 0
}

func (s *strip) SetSelected(it carousel.Item, on bool) {
	switch {
	case on:
		s.selected = it.Key()
	case s.selected == it.Key():
		s.selected = ""
	}
}

// Advance moves the drawn offset to now. It reports true once, when a
// transition reaches its end.
func (s *strip) Advance(now time.Time) bool {
	if !s.animating {
		return false
	}
	if now.Sub(s.start) >= s.transition {
		s.pos, s.animating = s.to, false
		return true
	}
	s.pos = s.position(now)
	return false
}

func (s *strip) Animating() bool { return s.animating }

// Offset is the offset currently drawn.
func (s *strip) Offset() float64 { return s.pos }

func (s *strip) position(now time.Time) float64 {
	if !s.animating || s.transition <= 0 {
		return s.pos
	}
	t := float64(now.Sub(s.start)) / float64(s.transition)
	if t >= 1 {
		return s.to
	}
	return s.from + (s.to-s.from)*ease(t)
}

// easeCurve is the CSS "ease" timing curve, cubic-bezier(.25, .1, .25, 1).
var easeCurve = curve.CubicBez{
	P0: curve.Pt(0, 0),
	P1: curve.Pt(0.25, 0.1),
	P2: curve.Pt(0.25, 1),
	P3: curve.Pt(1, 1),
}

// ease maps elapsed time to progress. x is monotonic on the curve, so the
// parameter for t is found by bisection.
func ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	lo, hi, u := 0.0, 1.0, t
	for i := 0; i < 30; i++ {
		x := easeCurve.Eval(u).X
		if math.Abs(x-t) < 1e-7 {
			break
		}
		if x < t {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return easeCurve.Eval(u).Y
}

// stripView describes one render of the strip.
type stripView struct {
	cards    []card
	selected string
	offset   float64
	width    int
	item     int
	margin   int
	height   int
}

// render lays the cards out left to right, shifts them by offset and crops
// the result to the container width.
func (v stripView) render() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	rows := make([]strings.Builder, v.height)
	gap := strings.Repeat(" ", max(v.margin, 0))
	count := 0
	for _, c := range v.cards {
		if !c.placeholder {
			count++
		}
	}
	total := 0
	for _, c := range v.cards {
		if c.placeholder {
			continue
		}
		block := strings.Split(v.card(c, total, count), "\n")
		for r := range rows {
			line := ""
			if r < len(block) {
				line = block[r]
			}
			rows[r].WriteString(gap)
			rows[r].WriteString(padRight(line, v.item))
			rows[r].WriteString(gap)
		}
		total++
	}

	// round half up so a centre on a half cell lands the same way at every index
	shift := int(math.Floor(v.offset + 0.5))
	out := make([]string, len(rows))
	for r := range rows {
		line := rows[r].String()
		if shift >= 0 {
			line = strings.Repeat(" ", shift) + line
		} else {
			line = ansi.Cut(line, -shift, -shift+v.width)
		}
		out[r] = padRight(ansi.Truncate(line, v.width, ""), v.width)
	}
	if total == 0 {
		out[v.height/2] = lipgloss.PlaceHorizontal(v.width, lipgloss.Center, emptyStyle.Render("no slides yet"))
	}
	return strings.Join(out, "\n")
}

func (v stripView) card(c card, i, n int) string {
	style := cardStyle
	if c.id == v.selected {
		style = selectedCardStyle
	}
	inner := max(v.item-2, 1)
	title := ansi.Truncate(c.title, inner, "…")
	content := titleStyle.Render(title) + "\n\n" + dimStyle.Render(counter(i, n))
	return style.Width(inner).Height(max(v.height-2, 1)).MaxHeight(v.height).MaxWidth(v.item).Render(content)
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
