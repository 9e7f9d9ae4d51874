package repository

import (
	"context"
	"database/sql"
)

// DeckRepo handles decks.
type DeckRepo struct {
	db DBTX
}

func NewDeckRepo(db DBTX) *DeckRepo { return &DeckRepo{db: db} }

func (r *DeckRepo) Upsert(ctx context.Context, d Deck) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO decks(id, name, selected_index) VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET name=excluded.name, updated_at=CURRENT_TIMESTAMP;
	`, d.ID, d.Name, d.SelectedIndex)
	return err
}

func (r *DeckRepo) ByName(ctx context.Context, name string) (*Deck, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, selected_index, created_at, updated_at FROM decks WHERE name = ?`, name)
	return scanDeck(row)
}

func (r *DeckRepo) Get(ctx context.Context, id string) (*Deck, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, selected_index, created_at, updated_at FROM decks WHERE id = ?`, id)
	return scanDeck(row)
}

func (r *DeckRepo) SetSelectedIndex(ctx context.Context, id string, index int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE decks SET selected_index = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, index, id)
	return err
}

func scanDeck(row *sql.Row) (*Deck, error) {
	var d Deck
	if err := row.Scan(&d.ID, &d.Name, &d.SelectedIndex, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
