// internal/redirect/interceptor.go
//
// Request-pipeline redirect interceptor.
//
// Context
// -------
// Runs once per top-level request, ahead of route matching, so an
// authored redirect wins over whatever route the path would otherwise
// hit.  Exclusion rules are evaluated first and are deliberately cheap:
// admin paths, asset paths, and paths whose final segment carries a file
// extension never reach the store, which keeps asset storms from
// hammering the lookup backend.
//
// Failure policy is fail-open: a store error is logged and the request
// proceeds to normal routing.  A missed redirect shows the visitor the
// original page or a 404; a failed-closed site shows them nothing.
//
// Notes
// -----
// • Wire this middleware before any routing or enrichment middleware,
//   the way tenant routers wire their path-rewrite step first.
// • Oxford commas, two spaces after periods.

package redirect

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/localeroute/internal/metrics"
	"github.com/yanizio/localeroute/internal/registry"
)

// Options tunes the interceptor's exclusion rules.  Zero value gets the
// production defaults.
type Options struct {
	AdminPrefix   string   // reserved admin prefix, default registry.AdminURLPrefix
	AssetPrefixes []string // static-asset prefixes, default /bundles and /assets
}

func (o *Options) withDefaults() {
	if o.AdminPrefix == "" {
		o.AdminPrefix = registry.AdminURLPrefix
	}
	if o.AssetPrefixes == nil {
		o.AssetPrefixes = []string{"/bundles", "/assets"}
	}
}

// Interceptor returns middleware that short-circuits requests with an
// authored redirect.
func Interceptor(res *Resolver, opts Options) func(http.Handler) http.Handler {
	opts.withDefaults()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			path := r.URL.Path
			if excluded(path, &opts) {
				metrics.RedirectSkipTotal.Inc()
				next.ServeHTTP(w, r)
				return
			}

			dec, err := res.Resolve(r.Context(), path)
			if err != nil {
				metrics.RedirectLookupErrorsTotal.Inc()
				zap.L().Warn("redirect lookup failed open",
					zap.String("path", path),
					zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if dec == nil {
				next.ServeHTTP(w, r)
				return
			}

			metrics.RedirectHitTotal.Inc()
			zap.L().Debug("redirect short-circuit",
				zap.String("from", path),
				zap.String("to", dec.TargetURL),
				zap.Int("status", dec.StatusCode))
			http.Redirect(w, r, dec.TargetURL, dec.StatusCode)
		})
	}
}

// excluded reports whether path must bypass redirect resolution.
func excluded(path string, opts *Options) bool {
	if hasSegmentPrefix(path, opts.AdminPrefix) {
		return true
	}
	for _, p := range opts.AssetPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	// Final segment with a dot is treated as a file request.
	seg := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		seg = path[i+1:]
	}
	return strings.Contains(seg, ".")
}

// hasSegmentPrefix matches prefix only on a segment boundary, so
// /administrator is not an admin path.
func hasSegmentPrefix(path, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
