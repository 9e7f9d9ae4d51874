package tui

import (
	"math"

	"github.com/jask/fluidcarousel/internal/carousel"
	"github.com/jask/fluidcarousel/internal/database/repository"
)

// card is one child of the strip. Placeholder cards stand for slides that
// are still loading or being saved; they take no room and cannot be selected.
type card struct {
	id          string
	title       string
	body        string
	placeholder bool
}

func (c card) Key() string { return c.id }

func isPlaceholder(it carousel.Item) bool {
	c, ok := it.(card)
	return ok && c.placeholder
}

// deck is the strip's item source.
type deck struct {
	cards []card
}

func (d *deck) Items() []carousel.Item {
	out := make([]carousel.Item, len(d.cards))
	for i, c := range d.cards {
		out[i] = c
	}
	return out
}

func (d *deck) Contains(it carousel.Item) bool {
	return d.index(it.Key()) >= 0
}

func (d *deck) index(id string) int {
	for i, c := range d.cards {
		if c.id == id {
			return i
		}
	}
	return -1
}

// realIndex is the position of id among the non-placeholder cards.
func (d *deck) realIndex(id string) int {
	n := 0
	for _, c := range d.cards {
		if c.placeholder {
			continue
		}
		if c.id == id {
			return n
		}
		n++
	}
	return -1
}

func (d *deck) real() []card {
	out := make([]card, 0, len(d.cards))
	for _, c := range d.cards {
		if !c.placeholder {
			out = append(out, c)
		}
	}
	return out
}

func (d *deck) get(id string) (card, bool) {
	if i := d.index(id); i >= 0 {
		return d.cards[i], true
	}
	return card{}, false
}

func (d *deck) replace(slides []repository.Slide) {
	d.cards = d.cards[:0]
	for _, s := range slides {
		d.cards = append(d.cards, card{id: s.ID, title: s.Title, body: s.Body})
	}
}

func (d *deck) addPlaceholder(id string) {
	d.cards = append(d.cards, card{id: id, placeholder: true})
}

// metrics answers geometry queries from the configured layout and the
// terminal width. Every width is reported in whole cells, the unit the strip
// is drawn in, so the offsets the controller computes land on card edges.
type metrics struct {
	container carousel.Length
	item      carousel.Length
	margin    float64
	viewport  int
}

func (m *metrics) ContainerWidth() carousel.Length { return carousel.Px(float64(m.containerCells())) }
func (m *metrics) ViewportWidth() float64          { return float64(m.viewport) }

func (m *metrics) ItemWidth(carousel.Item) carousel.Length {
	return carousel.Px(math.Round(m.item.Resolve(float64(m.containerCells()))))
}

func (m *metrics) ItemSideMargin(carousel.Item) float64 { return math.Round(m.margin) }

func (m *metrics) containerCells() int {
	return int(math.Round(m.container.Resolve(float64(m.viewport))))
}
