package sample

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jask/fluidcarousel/internal/service"
)

var (
	subjects = []string{"Harbour", "Ridge", "Lantern", "Orchard", "Glacier", "Meadow", "Quarry", "Delta"}
	moods    = []string{"at dawn", "in fog", "after rain", "at dusk", "in winter", "from above"}
	lines    = []string{
		"Swipe left or right to move between slides.",
		"Drag up or down to scroll this caption.",
		"Press / to jump to a slide by name.",
		"Resize the terminal: the selected slide stays centered.",
	}
)

// Seed appends n generated slides to a deck. The same seed yields the same deck.
func Seed(ctx context.Context, decks *service.DeckService, deckID string, n int, seed int64) error {
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("%s %s", subjects[r.Intn(len(subjects))], moods[r.Intn(len(moods))])
		body := fmt.Sprintf("Slide %d of %d.\n\n%s\n%s", i+1, n, lines[r.Intn(len(lines))], lines[r.Intn(len(lines))])
		if _, err := decks.Append(ctx, deckID, title, body); err != nil {
			return fmt.Errorf("seed slide %d: %w", i+1, err)
		}
	}
	return nil
}
