package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Record is one past search query.
type Record struct {
	ID         int64     `json:"id"`
	Word       string    `json:"word"`
	SourceLang string    `json:"source_lang"`
	CreatedAt  time.Time `json:"created_at"`
}

// row mirrors the table; timestamps are stored as RFC 3339 text so
// scanning does not depend on driver-specific time handling.
type row struct {
	ID         int64  `db:"id"`
	Word       string `db:"word"`
	SourceLang string `db:"source_lang"`
	CreatedAt  string `db:"created_at"`
}

// Repository defines operations over the search history.
type Repository interface {
	Append(ctx context.Context, word, sourceLang string) error
	List(ctx context.Context, limit int) ([]Record, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

// DBRepository implements Repository on SQLite.
type DBRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBRepository creates a repository over an open database.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db, now: time.Now}
}

// Append records one search query.
func (r *DBRepository) Append(ctx context.Context, word, sourceLang string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO search_history (word, source_lang, created_at) VALUES (?, ?, ?)",
		word, sourceLang, r.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert search_history) > %w", err)
	}
	return nil
}

// List returns the most recent queries, newest first.
func (r *DBRepository) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []row
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM search_history ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(search_history) > %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, item := range rows {
		createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("time.Parse(%s) > %w", item.CreatedAt, err)
		}
		records = append(records, Record{
			ID:         item.ID,
			Word:       item.Word,
			SourceLang: item.SourceLang,
			CreatedAt:  createdAt,
		})
	}
	return records, nil
}

// Delete removes one query by id. Deleting an unknown id is a no-op.
func (r *DBRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM search_history WHERE id = ?", id); err != nil {
		return fmt.Errorf("db.ExecContext(delete search_history) > %w", err)
	}
	return nil
}

// Clear removes every recorded query.
func (r *DBRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM search_history"); err != nil {
		return fmt.Errorf("db.ExecContext(clear search_history) > %w", err)
	}
	return nil
}
