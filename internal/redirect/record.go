// internal/redirect/record.go
//
// Redirect record model.
//
// Records are authored in the CMS and only read here.  A record maps one
// exact source path to a target (absolute path or URL) with a kind that
// selects the HTTP status.  Kind values other than permanent resolve to
// 302 on purpose: an unknown value must never be silently upgraded to a
// cacheable 301.

package redirect

import (
	"net/http"
	"time"
)

// Redirect kinds as stored in the redirect_type column.
const (
	TypePermanent = 0
	TypeTemporary = 1
)

// Record mirrors one row in the `redirect` table.
type Record struct {
	ID          uint64    `db:"id" json:"id"`
	SourceURL   string    `db:"source_url" json:"source_url"`
	TargetURL   string    `db:"target_url" json:"target_url"`
	Type        int       `db:"redirect_type" json:"redirect_type"`
	Active      bool      `db:"active" json:"active"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
}

// StatusCode maps the record's kind to an HTTP status: 301 for permanent,
// 302 for temporary and for any unknown value.
func (r *Record) StatusCode() int {
	if r.Type == TypePermanent {
		return http.StatusMovedPermanently
	}
	return http.StatusFound
}
