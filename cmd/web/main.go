// cmd/web/main.go
//
// localeroute – HTTP entry point.
//
// Request life-cycle
// ------------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load conf/global.yaml, resolve any `vault:` secret references, and
//     open the CMS read-replica DB.
//
//  4. Build the locale/market registry, URL codec, redirect resolver
//     (TTL cache + singleflight), and language switcher.
//
//  5. Expose Prometheus /metrics endpoint.
//
//  6. Mount the chi router: market-suggestion middleware, redirect
//     interceptor, JSON endpoints, and optional HTTPS enforcement.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanizio/localeroute/internal/config"
	"github.com/yanizio/localeroute/internal/content"
	"github.com/yanizio/localeroute/internal/database"
	"github.com/yanizio/localeroute/internal/langswitch"
	"github.com/yanizio/localeroute/internal/logger"
	"github.com/yanizio/localeroute/internal/markethint"
	"github.com/yanizio/localeroute/internal/middleware"
	"github.com/yanizio/localeroute/internal/redirect"
	"github.com/yanizio/localeroute/internal/registry"
	"github.com/yanizio/localeroute/internal/server"
	"github.com/yanizio/localeroute/internal/urlpath"
	"github.com/yanizio/localeroute/internal/vault"
)

const serverEnvPath = "/usr/local/etc/localeroute/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	ctx := context.Background()

	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalf("load config: %v", err)
	}

	// Resolve `vault:` password references when a Vault server is reachable.
	if os.Getenv("VAULT_ADDR") != "" {
		cli, err := vault.New(logOut.Infof)
		if err != nil {
			logOut.Fatalf("vault client: %v", err)
		}
		if err := config.ResolveSecrets(ctx, cli); err != nil {
			logOut.Fatalf("resolve secrets: %v", err)
		}
		cfg = config.Get()
	}

	//
	// ── 2.  CMS read-replica DB ─────────────────────────────────────────
	//
	dsn := strings.ReplaceAll(cfg.Database.DSN, "{password}", cfg.Database.Password)
	logOut.Infow("connecting to CMS DB")
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := database.Open(pingCtx, dsn)
	cancel()
	if err != nil {
		logOut.Fatalf("connect CMS DB: %v", err)
	}
	defer db.Close()
	logOut.Infow("CMS DB online")

	// Log active-redirect count as an early sanity check.
	var active int
	_ = db.Get(&active, `SELECT COUNT(*) FROM redirect WHERE active = 1`)
	logOut.Infow("redirect table scanned", "active", active)

	//
	// ── 3.  Registry, codec, resolver, switcher ─────────────────────────
	//
	reg := registry.Default()
	if t := cfg.RegistryTables(); t != nil {
		reg = registry.New(*t)
	}
	codec := urlpath.New(reg)

	store := redirect.NewStore(db)
	cacheSize := cfg.Redirect.CacheSize
	if cacheSize <= 0 {
		cacheSize = redirect.DefaultCacheSize
	}
	cacheTTL := cfg.Redirect.CacheTTL()
	if cfg.Redirect.CacheTTLSeconds == 0 {
		cacheTTL = redirect.DefaultCacheTTL
	}
	resolver := redirect.NewResolver(store, cacheSize, cacheTTL)

	items := content.NewStore(db)
	switcher := langswitch.New(reg, codec)

	hinter, err := markethint.New(reg, cfg.GeoIP.DatabasePath)
	if err != nil {
		logOut.Fatalf("open geoip db: %v", err)
	}
	defer hinter.Close()

	//
	// ── 4.  Router ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	if cfg.HTTP.SecurityHeaders {
		r.Use(middleware.Security)
	}
	r.Use(hinter.Middleware)
	r.Use(redirect.Interceptor(resolver, redirect.Options{
		AssetPrefixes: cfg.Redirect.AssetPrefixes,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/languages", langswitch.Handler(items, switcher))
	r.Get("/admin/redirects", redirect.ListHandler(store))
	r.Get("/admin/redirects/lookup", redirect.LookupHandler(resolver))

	var handler http.Handler = r
	if cfg.HTTP.ForceHTTPS {
		handler = middleware.ForceHTTPS(handler)
	}

	srv := server.New(cfg.HTTP.ListenAddr, handler)
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := srv.ListenAndServe(); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
}
