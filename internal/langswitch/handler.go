// internal/langswitch/handler.go
//
// JSON endpoint feeding the frontend language switcher.  GET with
// ?content=<id>&siteaccess=<name>; siteaccess defaults to the global
// partition when absent.

package langswitch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/yanizio/localeroute/internal/content"
	"github.com/yanizio/localeroute/internal/registry"
)

// ItemSource is the content-store contract the handler needs.
type ItemSource interface {
	ByID(ctx context.Context, id uint64) (*content.Item, error)
}

// Handler serves the availability map for one content item.
func Handler(store ItemSource, sw *Switcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(r.URL.Query().Get("content"), 10, 64)
		if err != nil {
			http.Error(w, "missing or invalid content parameter", http.StatusBadRequest)
			return
		}

		siteaccess := r.URL.Query().Get("siteaccess")
		if siteaccess == "" {
			siteaccess = registry.GlobalSiteaccess
		}

		item, err := store.ByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			zap.L().Error("language availability lookup failed",
				zap.Uint64("content", id),
				zap.Error(err))
			http.Error(w, "content lookup unavailable", http.StatusInternalServerError)
			return
		}

		langs := sw.AvailableLanguages(item, item.CanonicalPath(), siteaccess)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"languages": langs,
			"markets":   sw.AvailableMarkets(item),
			"displayed": sw.GetDisplayedLanguage(item, parsedLocale(sw, siteaccess)),
		})
	}
}

// parsedLocale resolves the locale bound to a siteaccess name, falling
// back to the global locale for unknown names.
func parsedLocale(sw *Switcher, siteaccess string) string {
	for _, locale := range sw.reg.AllLocales() {
		if sw.reg.SiteaccessOf(locale) == siteaccess {
			return locale
		}
	}
	return registry.GlobalLocale
}
