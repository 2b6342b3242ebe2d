// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                          – dotenv values,
//   • `conf/global.yaml`                            – primary static file,
//   • `LOCALEROUTE_`-prefixed environment overrides – highest precedence.
//
// A Database.Password beginning with `vault:` is resolved through the
// Vault client after unmarshalling, so the rest of the app only ever
// sees plain strings.  Validation happens immediately after unmarshal;
// the binary fails fast on missing required fields.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml`
//     tags unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not set it.
//   • Registry tables may be overridden wholesale for region-specific
//     deployments; an empty block means the shipped defaults.
//   • Oxford commas, two spaces after periods.

package config

import (
	"time"

	"github.com/yanizio/localeroute/internal/registry"
)

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr      string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS      bool   `koanf:"force_https"`
	SecurityHeaders bool   `koanf:"security_headers"`
}

//
// Database section
//

// Database holds the CMS read-replica DSN.  The DSN may carry a
// `{password}` placeholder that is filled from Password, which itself
// may be a `vault:` reference resolved at load time.
type Database struct {
	DSN      string `koanf:"dsn" validate:"required"`
	Password string `koanf:"password"`
}

//
// GeoIP section
//

// GeoIP points at an optional GeoLite2 country database used by the
// market suggestion middleware.  Empty disables IP-based hints.
type GeoIP struct {
	DatabasePath string `koanf:"database_path"`
}

//
// Redirect section
//

// Redirect tunes the interceptor and its lookup cache.
type Redirect struct {
	CacheSize       int      `koanf:"cache_size"`
	CacheTTLSeconds int      `koanf:"cache_ttl_seconds"`
	AssetPrefixes   []string `koanf:"asset_prefixes"`
}

// CacheTTL returns the configured TTL; zero disables caching.
func (r Redirect) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.
type Paths struct {
	Root string // LOCALEROUTE_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP            `koanf:"http"`
	Database Database        `koanf:"database"`
	GeoIP    GeoIP           `koanf:"geoip"`
	Redirect Redirect        `koanf:"redirect"`
	Registry registry.Tables `koanf:"registry"`
	Paths    Paths           `koanf:"-"` // not loaded from config files
}

// RegistryTables returns the configured override tables, or nil when the
// shipped defaults should be used.
func (c *Config) RegistryTables() *registry.Tables {
	if len(c.Registry.Locales) == 0 &&
		len(c.Registry.Markets) == 0 &&
		len(c.Registry.Siteaccesses) == 0 {
		return nil
	}
	t := c.Registry
	return &t
}
