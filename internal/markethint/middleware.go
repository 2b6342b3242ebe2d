// internal/markethint/middleware.go
//
// Response-annotation middleware.  Adds the X-Market-Suggestion header
// to page responses so the frontend can offer a market switch.  Crawlers
// are skipped: cached copies of a page must not carry a visitor-specific
// suggestion, and bots have no market anyway.

package markethint

import (
	"net"
	"net/http"
	"strings"

	"github.com/avct/uasurfer"

	"github.com/yanizio/localeroute/internal/metrics"
)

// Header carries the suggested market code on responses.
const Header = "X-Market-Suggestion"

// Middleware annotates responses with the suggested market.
func (h *Hinter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.UserAgent(); ua != "" && uasurfer.Parse(ua).IsBot() {
			next.ServeHTTP(w, r)
			return
		}

		market := h.MarketFor(clientIP(r), r.Header.Get("Accept-Language"))
		w.Header().Set(Header, market)
		metrics.MarketHintTotal.Inc()

		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the left-most address from X-Forwarded-For or
// X-Real-IP, falling back to r.RemoteAddr ("ip:port").
func clientIP(r *http.Request) net.IP {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
				return ip
			}
		}
	}
	if xrip := r.Header.Get("X-Real-Ip"); xrip != "" {
		if ip := net.ParseIP(strings.TrimSpace(xrip)); ip != nil {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return nil
}
