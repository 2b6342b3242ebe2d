// internal/content/store.go
//
// sqlx-backed content lookups.  One query for the item row, one for its
// translation set; both run against the CMS read replica, so the caller
// supplies a context to respect request deadlines.

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a content ID does not exist.
var ErrNotFound = errors.New("content not found")

// Store reads content projections via a sqlx pool.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open pool.  The pool is shared; Store never closes it.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// ByID fetches one item and its translation set.
func (s *Store) ByID(ctx context.Context, id uint64) (*Item, error) {
	const itemQ = `
	    SELECT id, title, content_type, initial_locale
	    FROM   content
	    WHERE  id = ?
	    LIMIT  1`

	var it Item
	if err := s.db.GetContext(ctx, &it, itemQ, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("content %d: %w", id, err)
	}

	const localesQ = `
	    SELECT locale
	    FROM   content_translation
	    WHERE  content_id = ?
	      AND  published = 1`

	if err := s.db.SelectContext(ctx, &it.Locales, localesQ, id); err != nil {
		return nil, fmt.Errorf("content %d translations: %w", id, err)
	}
	return &it, nil
}
