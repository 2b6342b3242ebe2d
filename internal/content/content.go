// internal/content/content.go
//
// Read-side view of CMS content: which translations exist for an item,
// which locale it was authored in, and where it canonically lives.  The
// CMS owns the write side; this package never mutates anything.

package content

import (
	"github.com/yanizio/localeroute/internal/slug"
)

// Item is one content item's routing-relevant projection.
type Item struct {
	ID      uint64 `db:"id"`
	Title   string `db:"title"`
	Type    string `db:"content_type"`
	Initial string `db:"initial_locale"`

	// Locales holds every locale code with a published translation,
	// the authored locale included.
	Locales []string
}

// HasLocale reports whether a published translation exists for code.
func (it *Item) HasLocale(code string) bool {
	for _, l := range it.Locales {
		if l == code {
			return true
		}
	}
	return false
}

// InitialLocale returns the locale the item was originally authored in.
func (it *Item) InitialLocale() string { return it.Initial }

// CanonicalPath returns the market-independent path the item publishes
// at, derived from its content type's virtual segment and its title.
func (it *Item) CanonicalPath() string {
	return slug.AliasFor(it.Type, it.Title)
}
