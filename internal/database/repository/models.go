package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Deck represents a deck row.
type Deck struct {
	ID            string
	Name          string
	SelectedIndex int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Slide represents a slide row. Position orders slides within a deck.
type Slide struct {
	ID        string
	DeckID    string
	Title     string
	Body      string
	Position  int
	CreatedAt time.Time
}
