// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RedirectLookupTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redirect_lookup_total",
			Help: "Cumulative number of redirect store lookups.",
		})

	RedirectHitTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redirect_hit_total",
			Help: "Cumulative number of requests short-circuited by a redirect.",
		})

	RedirectLookupErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redirect_lookup_errors_total",
			Help: "Cumulative number of redirect lookups that failed open.",
		})

	RedirectSkipTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redirect_skip_total",
			Help: "Cumulative number of requests excluded before lookup (admin, assets, dotted paths).",
		})

	RedirectCacheHitTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redirect_cache_hit_total",
			Help: "Cumulative number of redirect lookups served from the TTL cache.",
		})

	MarketHintTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "market_hint_total",
			Help: "Cumulative number of responses annotated with a market suggestion.",
		})
)

func init() {
	prometheus.MustRegister(
		RedirectLookupTotal,
		RedirectHitTotal,
		RedirectLookupErrorsTotal,
		RedirectSkipTotal,
		RedirectCacheHitTotal,
		MarketHintTotal,
	)
}
