// internal/markethint/markethint.go
//
// Best-effort market suggestion for inbound visitors.
//
// Context
// -------
// A first-time visitor lands on an unprefixed URL and the frontend wants
// to offer the right market switch without a blocking geo-IP service
// call from the browser.  The Hinter combines two cheap signals, in
// order of trust:
//
//   1. GeoLite2 country of the client IP (TH → th, MY → my).
//   2. The primary Accept-Language subtag (th → th, ms → my).
//
// Anything else suggests the global market.  The result is advisory; it
// never rewrites the request, it only annotates the response so the
// frontend can render a market prompt.
//
// Notes
// -----
// • The GeoLite2 database is optional.  Without it the Hinter runs on
//   Accept-Language alone.
// • All lookups are read-only and pool-based; safe under concurrency.
// • Oxford commas, two spaces after periods.

package markethint

import (
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"

	"github.com/yanizio/localeroute/internal/registry"
)

// countryMarkets maps ISO country codes to market codes.
var countryMarkets = map[string]string{
	"TH": "th",
	"MY": "my",
}

// languageMarkets maps primary Accept-Language subtags to market codes.
var languageMarkets = map[string]string{
	"th": "th",
	"ms": "my",
}

// Hinter suggests a market for a request.  Immutable after New.
type Hinter struct {
	reg *registry.Registry
	geo *geoip2.Reader // nil when no database is configured
}

// New returns a Hinter.  geoDBPath may be empty to disable IP lookup.
func New(reg *registry.Registry, geoDBPath string) (*Hinter, error) {
	h := &Hinter{reg: reg}
	if geoDBPath != "" {
		r, err := geoip2.Open(geoDBPath)
		if err != nil {
			return nil, fmt.Errorf("markethint: open geo database: %w", err)
		}
		h.geo = r
	}
	return h, nil
}

// Close releases the GeoLite2 handle, if any.
func (h *Hinter) Close() error {
	if h.geo == nil {
		return nil
	}
	return h.geo.Close()
}

// MarketFor returns the suggested market code for a client.  It always
// returns a known market; the global market is the catch-all.
func (h *Hinter) MarketFor(ip net.IP, acceptLanguage string) string {
	if h.geo != nil && ip != nil {
		if rec, err := h.geo.Country(ip); err == nil {
			if m, ok := countryMarkets[rec.Country.IsoCode]; ok {
				return m
			}
		}
	}

	if m, ok := languageMarkets[primarySubtag(acceptLanguage)]; ok {
		return m
	}
	return registry.GlobalMarket
}

// primarySubtag extracts the primary language subtag from an
// Accept-Language header: "th-TH,en;q=0.8" → "th".
func primarySubtag(header string) string {
	first := header
	if i := strings.IndexByte(first, ','); i >= 0 {
		first = first[:i]
	}
	if i := strings.IndexByte(first, ';'); i >= 0 {
		first = first[:i]
	}
	if i := strings.IndexByte(first, '-'); i >= 0 {
		first = first[:i]
	}
	return strings.ToLower(strings.TrimSpace(first))
}
