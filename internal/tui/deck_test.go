package tui

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/fluidcarousel/internal/carousel"
)

func TestMetricsReportWholeCells(t *testing.T) {
	m := &metrics{container: carousel.Percent(100), item: carousel.Percent(60), margin: 1.6, viewport: 99}

	require.Equal(t, 99.0, m.ContainerWidth().Resolve(m.ViewportWidth()))
	require.Equal(t, carousel.Px(59), m.ItemWidth(nil))
	require.Equal(t, 2.0, m.ItemSideMargin(nil))
}

// The selected card must stay centred at every index, even when a percentage
// item width does not divide the terminal width evenly.
func TestSelectedCardStaysCentredAtOddWidths(t *testing.T) {
	tests := []struct {
		name     string
		viewport int
	}{
		{name: "99 columns", viewport: 99},
		{name: "101 columns", viewport: 101},
		{name: "77 columns", viewport: 77},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &metrics{container: carousel.Percent(100), item: carousel.Percent(60), margin: 2, viewport: tt.viewport}
			cards := make([]card, 20)
			for i := range cards {
				cards[i] = card{id: fmt.Sprintf("c%02d", i), title: fmt.Sprintf("c%02d", i)}
			}
			container := m.ContainerWidth().Resolve(m.ViewportWidth())
			item := m.ItemWidth(nil).Resolve(container)
			want := int(math.Floor((container-item)/2 + 0.5))

			for _, k := range []int{0, 5, 10, 19} {
				l := carousel.ComputeLayout(container, m.ItemWidth(nil), m.ItemSideMargin(nil), k)
				out := stripView{
					cards:    cards,
					selected: cards[k].id,
					offset:   l.Offset,
					width:    m.containerCells(),
					item:     int(l.ItemWidth),
					margin:   int(l.SideMargin),
					height:   7,
				}.render()
				rows := strings.Split(ansi.Strip(out), "\n")
				top := []rune(rows[0])
				require.Equal(t, '╭', top[want], "index %d: left border of the selected card", k)
				require.Contains(t, ansi.Strip(out), counter(k, len(cards)))
			}
		})
	}
}
