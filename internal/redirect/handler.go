// internal/redirect/handler.go
//
// Explicit HTTP surfaces over the redirect store: the admin listing and
// the on-demand lookup endpoint.  Unlike the interceptor these are
// caller-invoked, so store errors surface as 500s instead of failing
// open; the caller asked for the lookup and deserves to know it broke.

package redirect

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Lister is the store contract for the admin listing.
type Lister interface {
	AllActive(ctx context.Context) ([]Record, error)
}

// ListHandler serves the active redirect set as JSON, most recently
// published first, capped at the store's listing limit.
func ListHandler(store Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := store.AllActive(r.Context())
		if err != nil {
			zap.L().Error("redirect listing failed", zap.Error(err))
			http.Error(w, "redirect listing unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"redirects": recs,
			"total":     len(recs),
		})
	}
}

// LookupHandler resolves the path given in the ?path= query parameter
// and answers with the configured redirect, or 404 when no active
// redirect (with a non-empty target) exists for it.
func LookupHandler(res *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		if path == "" {
			http.Error(w, "missing path parameter", http.StatusBadRequest)
			return
		}

		dec, err := res.Resolve(r.Context(), path)
		if err != nil {
			zap.L().Error("redirect lookup failed",
				zap.String("path", path),
				zap.Error(err))
			http.Error(w, "redirect lookup unavailable", http.StatusInternalServerError)
			return
		}
		if dec == nil {
			http.NotFound(w, r)
			return
		}

		http.Redirect(w, r, dec.TargetURL, dec.StatusCode)
	}
}
