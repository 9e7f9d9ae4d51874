package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/fluidcarousel/internal/database"
	"github.com/jask/fluidcarousel/internal/database/repository"
)

// ErrEmptyTitle is returned when a slide is added without a title.
var ErrEmptyTitle = errors.New("slide title is empty")

// DeckService manages the slides of a deck and its persisted selection.
type DeckService struct {
	DB     *sql.DB
	Decks  *repository.DeckRepo
	Slides *repository.SlideRepo
}

// NewDeckService wires repos for db.
func NewDeckService(db *sql.DB) *DeckService {
	return &DeckService{DB: db, Decks: repository.NewDeckRepo(db), Slides: repository.NewSlideRepo(db)}
}

// Open returns the named deck, creating it when missing.
func (s *DeckService) Open(ctx context.Context, name string) (repository.Deck, error) {
	return database.EnsureDeck(ctx, s.DB, strings.TrimSpace(name))
}

// Deck reloads a deck by id.
func (s *DeckService) Deck(ctx context.Context, id string) (repository.Deck, error) {
	d, err := s.Decks.Get(ctx, id)
	if err != nil {
		return repository.Deck{}, fmt.Errorf("load deck: %w", err)
	}
	if d == nil {
		return repository.Deck{}, fmt.Errorf("load deck: %s not found", id)
	}
	return *d, nil
}

// List returns the slides of a deck in display order.
func (s *DeckService) List(ctx context.Context, deckID string) ([]repository.Slide, error) {
	slides, err := s.Slides.List(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	return slides, nil
}

// Append adds a slide at the end of the deck.
func (s *DeckService) Append(ctx context.Context, deckID, title, body string) (repository.Slide, error) {
	return s.Insert(ctx, deckID, -1, title, body)
}

// Insert adds a slide at position at, moving later slides right. A negative
// or too large position appends.
func (s *DeckService) Insert(ctx context.Context, deckID string, at int, title, body string) (repository.Slide, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return repository.Slide{}, ErrEmptyTitle
	}
	slide := repository.Slide{
		ID:     uuid.NewString(),
		DeckID: deckID,
		Title:  title,
		Body:   strings.TrimRight(body, "\n"),
	}
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		slides := repository.NewSlideRepo(tx)
		last, err := slides.MaxPosition(ctx, deckID)
		if err != nil {
			return err
		}
		if at < 0 || at > last {
			at = last + 1
		} else if err := slides.Shift(ctx, deckID, at, 1); err != nil {
			return err
		}
		slide.Position = at
		return slides.Insert(ctx, slide)
	})
	if err != nil {
		return repository.Slide{}, fmt.Errorf("insert slide: %w", err)
	}
	return slide, nil
}

// Remove deletes a slide and closes the gap it leaves.
func (s *DeckService) Remove(ctx context.Context, slideID string) error {
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		slides := repository.NewSlideRepo(tx)
		slide, err := slides.Get(ctx, slideID)
		if err != nil {
			return err
		}
		if slide == nil {
			return nil
		}
		if err := slides.Delete(ctx, slideID); err != nil {
			return err
		}
		return slides.Shift(ctx, slide.DeckID, slide.Position+1, -1)
	})
	if err != nil {
		return fmt.Errorf("remove slide: %w", err)
	}
	return nil
}

// SaveSelection remembers the selected index so the deck reopens there.
func (s *DeckService) SaveSelection(ctx context.Context, deckID string, index int) error {
	if index < 0 {
		index = 0
	}
	if err := s.Decks.SetSelectedIndex(ctx, deckID, index); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}
