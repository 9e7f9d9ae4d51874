package repository

import (
	"context"
	"database/sql"
)

// SlideRepo handles slides.
type SlideRepo struct {
	db DBTX
}

func NewSlideRepo(db DBTX) *SlideRepo { return &SlideRepo{db: db} }

func (r *SlideRepo) Insert(ctx context.Context, s Slide) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO slides(id, deck_id, title, body, position, created_at)
	VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, s.ID, s.DeckID, s.Title, s.Body, s.Position)
	return err
}

func (r *SlideRepo) Get(ctx context.Context, id string) (*Slide, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, deck_id, title, body, position, created_at FROM slides WHERE id = ?`, id)
	var s Slide
	if err := row.Scan(&s.ID, &s.DeckID, &s.Title, &s.Body, &s.Position, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// List returns the slides of a deck in display order.
func (r *SlideRepo) List(ctx context.Context, deckID string) ([]Slide, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, deck_id, title, body, position, created_at
	FROM slides WHERE deck_id = ? ORDER BY position, created_at`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Slide
	for rows.Next() {
		var s Slide
		if err := rows.Scan(&s.ID, &s.DeckID, &s.Title, &s.Body, &s.Position, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// MaxPosition returns the highest position in a deck, or -1 when it is empty.
func (r *SlideRepo) MaxPosition(ctx context.Context, deckID string) (int, error) {
	var pos sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(position) FROM slides WHERE deck_id = ?`, deckID).Scan(&pos); err != nil {
		return 0, err
	}
	if !pos.Valid {
		return -1, nil
	}
	return int(pos.Int64), nil
}

// Shift moves every slide at or after position by delta.
func (r *SlideRepo) Shift(ctx context.Context, deckID string, position, delta int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE slides SET position = position + ? WHERE deck_id = ? AND position >= ?`, delta, deckID, position)
	return err
}

func (r *SlideRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM slides WHERE id = ?`, id)
	return err
}

func (r *SlideRepo) DeleteDeck(ctx context.Context, deckID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM slides WHERE deck_id = ?`, deckID)
	return err
}
