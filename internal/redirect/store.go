// internal/redirect/store.go
//
// SQL-backed redirect store.
//
// Context
// -------
// The CMS publishes redirect records into the `redirect` table; this
// store is the read side.  FindBySource implements the findOrNull
// contract: absence is a nil record, never an error, so callers are not
// tempted to use exceptions-as-control-flow.  When several active
// records share a source path the most recently published one wins,
// which the queries encode with ORDER BY published_at DESC.

package redirect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// listLimit caps AllActive; the admin listing never pages beyond this.
const listLimit = 1000

// Store reads redirect records via a sqlx pool.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open pool.  The pool is shared; Store never closes it.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// FindBySource returns the winning active record whose source path equals
// source exactly, or nil when there is none.
func (s *Store) FindBySource(ctx context.Context, source string) (*Record, error) {
	const q = `
	    SELECT id, source_url, target_url, redirect_type, active, published_at
	    FROM   redirect
	    WHERE  source_url = ?
	      AND  active = 1
	    ORDER  BY published_at DESC
	    LIMIT  1`

	var rec Record
	if err := s.db.GetContext(ctx, &rec, q, source); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("redirect lookup %q: %w", source, err)
	}
	return &rec, nil
}

// AllActive returns every active record, most recently published first,
// capped at listLimit.
func (s *Store) AllActive(ctx context.Context) ([]Record, error) {
	const q = `
	    SELECT id, source_url, target_url, redirect_type, active, published_at
	    FROM   redirect
	    WHERE  active = 1
	    ORDER  BY published_at DESC
	    LIMIT  ?`

	var rows []Record
	if err := s.db.SelectContext(ctx, &rows, q, listLimit); err != nil {
		return nil, fmt.Errorf("redirect list: %w", err)
	}
	return rows, nil
}
