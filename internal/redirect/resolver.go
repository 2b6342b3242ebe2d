// internal/redirect/resolver.go
//
// Redirect resolution.
//
// Context
// -------
// Resolve turns a request path into a redirect decision, or nil when the
// path should proceed to normal routing.  A record with an empty target
// also resolves to nil: the platform never emits a redirect to nowhere,
// so a half-authored record degrades to the ordinary 404 path instead of
// a broken Location header.  That single empty-target policy applies to
// every caller, the interceptor and the explicit endpoints alike.
//
// Lookups are memoised in a bounded TTL cache (negative results too,
// since most request paths have no redirect), and concurrent misses for
// the same path are collapsed through singleflight so a hot path costs
// one store query per TTL window.
//
// Notes
// -----
// • Resolve returns store errors to the caller.  Fail-open behaviour is
//   the interceptor's policy, not the resolver's.
// • Oxford commas, two spaces after periods.

package redirect

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yanizio/localeroute/internal/cache"
	"github.com/yanizio/localeroute/internal/metrics"
)

// Cache sizing defaults.  Negative entries dominate, so the capacity is
// generous relative to the number of authored redirects.
const (
	DefaultCacheSize = 4096
	DefaultCacheTTL  = time.Minute
)

// Finder is the store contract the resolver needs: exact-match lookup
// with nil-on-absence semantics.
type Finder interface {
	FindBySource(ctx context.Context, source string) (*Record, error)
}

// Decision is a resolved redirect: where to send the client and with
// which status.
type Decision struct {
	TargetURL  string
	StatusCode int
}

// Resolver resolves request paths against a Finder with caching.
type Resolver struct {
	finder Finder
	cache  *cache.TTL
	sfg    singleflight.Group
}

// NewResolver returns a caching resolver over finder.  ttl <= 0 disables
// the cache entirely (every Resolve hits the store).
func NewResolver(finder Finder, cacheSize int, ttl time.Duration) *Resolver {
	r := &Resolver{finder: finder}
	if ttl > 0 {
		if cacheSize < 1 {
			cacheSize = DefaultCacheSize
		}
		r.cache = cache.New(cacheSize, ttl)
	}
	return r
}

// Resolve returns the redirect decision for path, nil when none applies,
// or the store error when the lookup itself failed.
func (r *Resolver) Resolve(ctx context.Context, path string) (*Decision, error) {
	if r.cache != nil {
		if v, ok := r.cache.Get(path); ok {
			metrics.RedirectCacheHitTotal.Inc()
			return v.(*Decision), nil
		}
	}

	v, err, _ := r.sfg.Do(path, func() (any, error) {
		metrics.RedirectLookupTotal.Inc()

		rec, err := r.finder.FindBySource(ctx, path)
		if err != nil {
			return nil, err
		}

		dec := decisionFor(rec)
		if r.cache != nil {
			r.cache.Add(path, dec)
		}
		return dec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Decision), nil
}

// decisionFor maps a record to a decision.  Missing record or empty
// target both mean "no redirect".
func decisionFor(rec *Record) *Decision {
	if rec == nil || rec.TargetURL == "" {
		return nil
	}
	return &Decision{TargetURL: rec.TargetURL, StatusCode: rec.StatusCode()}
}
