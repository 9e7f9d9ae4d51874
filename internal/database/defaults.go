package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/fluidcarousel/internal/database/repository"
)

// DeckID derives a stable id from a deck name so that every install agrees on it.
func DeckID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("deck:"+name)).String()
}

// EnsureDeck returns the deck called name, creating an empty one if needed.
// It is idempotent and safe to run on every startup.
func EnsureDeck(ctx context.Context, db *sql.DB, name string) (repository.Deck, error) {
	decks := repository.NewDeckRepo(db)
	existing, err := decks.ByName(ctx, name)
	if err != nil {
		return repository.Deck{}, fmt.Errorf("lookup deck %q: %w", name, err)
	}
	if existing != nil {
		return *existing, nil
	}
	d := repository.Deck{ID: DeckID(name), Name: name}
	if err := decks.Upsert(ctx, d); err != nil {
		return repository.Deck{}, fmt.Errorf("create deck %q: %w", name, err)
	}
	return d, nil
}
