package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/fluidcarousel/internal/database"
	"github.com/jask/fluidcarousel/internal/database/repository"
)

// MaintenanceService houses destructive actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// ClearDeck removes every slide of a deck and rewinds its selection. The
// deck itself is kept so the app can continue running.
func (s *MaintenanceService) ClearDeck(ctx context.Context, deckID string) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	return database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := repository.NewSlideRepo(tx).DeleteDeck(ctx, deckID); err != nil {
			return fmt.Errorf("clear slides: %w", err)
		}
		if err := repository.NewDeckRepo(tx).SetSelectedIndex(ctx, deckID, 0); err != nil {
			return fmt.Errorf("rewind selection: %w", err)
		}
		return nil
	})
}
