// internal/registry/registry.go
//
// Locale, market, and siteaccess lookup tables.
//
// Context
// -------
// Every public URL on the platform is scoped to a siteaccess: a named
// routing partition bound to exactly one locale and, through the locale,
// to one market.  These relationships are static configuration; they
// change only on deploy.  The Registry holds them in plain maps that are
// populated once by New (or Default) and never mutated afterward, so every
// lookup is an O(1) read that is safe under any amount of concurrency.
//
// Lookups never fail.  An unknown key resolves to the documented global
// default (global market, eng-GB, global-en), mirroring how the routing
// layer must behave for URLs that carry no recognisable prefix.  Callers
// that care whether a key was actually present can compare against the
// defaults or consult AllMarkets / AllLocales.
//
// Notes
// -----
// • The admin siteaccess is reserved.  It sits outside the locale and
//   market system and only contributes its fixed URL prefix.
// • Construct alternate tables via New for tests or region-specific
//   deployments; conf/global.yaml may override the defaults.
// • Oxford commas, two spaces after periods.

package registry

// Reserved names and process-wide defaults.  The three Global* constants
// are the universal fallback triple for unprefixed or unknown input.
const (
	GlobalMarket     = "global"
	GlobalLocale     = "eng-GB"
	GlobalSiteaccess = "global-en"

	AdminSiteaccess = "admin"
	AdminURLPrefix  = "/admin"
)

// Locale is a language+region pair, keyed by its opaque code.
type Locale struct {
	Code        string `koanf:"code"`
	DisplayName string `koanf:"display_name"`
}

// Market is a regional grouping of locales.  Locales is the fallback
// chain, most specific first; it always terminates in GlobalLocale.
type Market struct {
	Code      string   `koanf:"code"`
	Locales   []string `koanf:"locales"`
	URLPrefix string   `koanf:"url_prefix"`
}

// Siteaccess is one routing partition: a URL prefix bound to one locale
// and one market.
type Siteaccess struct {
	Name      string `koanf:"name"`
	URLPrefix string `koanf:"url_prefix"`
	Locale    string `koanf:"locale"`
	Market    string `koanf:"market"`
}

// Tables is the raw input to New.  Order is preserved: AllMarkets and
// AllLocales report entries in declaration order.
type Tables struct {
	Locales     []Locale     `koanf:"locales"`
	Markets     []Market     `koanf:"markets"`
	Siteaccesses []Siteaccess `koanf:"siteaccesses"`
}

// Registry answers locale/market/siteaccess lookups.  Immutable after New.
type Registry struct {
	locales      map[string]Locale
	markets      map[string]Market
	siteaccesses map[string]Siteaccess

	localeSiteaccess map[string]string // locale code → siteaccess name
	marketOrder      []string
	localeOrder      []string
}

// New builds a Registry from the given tables.  The tables are copied;
// the caller may discard or reuse its slices afterward.
func New(t Tables) *Registry {
	r := &Registry{
		locales:          make(map[string]Locale, len(t.Locales)),
		markets:          make(map[string]Market, len(t.Markets)),
		siteaccesses:     make(map[string]Siteaccess, len(t.Siteaccesses)),
		localeSiteaccess: make(map[string]string, len(t.Siteaccesses)),
	}

	for _, l := range t.Locales {
		r.locales[l.Code] = l
		r.localeOrder = append(r.localeOrder, l.Code)
	}
	for _, m := range t.Markets {
		m.Locales = append([]string(nil), m.Locales...)
		r.markets[m.Code] = m
		r.marketOrder = append(r.marketOrder, m.Code)
	}
	for _, s := range t.Siteaccesses {
		r.siteaccesses[s.Name] = s
		if s.Locale != "" {
			r.localeSiteaccess[s.Locale] = s.Name
		}
	}
	return r
}

// MarketOf returns the market code serving a siteaccess, or GlobalMarket
// for unknown names (including admin).
func (r *Registry) MarketOf(siteaccessName string) string {
	if s, ok := r.siteaccesses[siteaccessName]; ok && s.Market != "" {
		return s.Market
	}
	return GlobalMarket
}

// LocalesOf returns a market's fallback chain, most specific first.  The
// returned slice is a copy; callers may mutate it freely.  Unknown markets
// fall back to the single-element global chain.
func (r *Registry) LocalesOf(market string) []string {
	if m, ok := r.markets[market]; ok {
		return append([]string(nil), m.Locales...)
	}
	return []string{GlobalLocale}
}

// SiteaccessOf returns the siteaccess bound to a locale, or
// GlobalSiteaccess when the locale is unknown.
func (r *Registry) SiteaccessOf(locale string) string {
	if name, ok := r.localeSiteaccess[locale]; ok {
		return name
	}
	return GlobalSiteaccess
}

// URLPrefixOf returns the URL prefix for a siteaccess.  Admin has a fixed
// reserved prefix; unknown names return the empty string.
func (r *Registry) URLPrefixOf(siteaccessName string) string {
	if siteaccessName == AdminSiteaccess {
		return AdminURLPrefix
	}
	if s, ok := r.siteaccesses[siteaccessName]; ok {
		return s.URLPrefix
	}
	return ""
}

// MarketURLPrefixOf returns the URL prefix of a market's lead siteaccess,
// or "" for unknown markets.
func (r *Registry) MarketURLPrefixOf(market string) string {
	if m, ok := r.markets[market]; ok {
		return m.URLPrefix
	}
	return ""
}

// DisplayNameOf returns the human-readable name for a locale.  Unknown
// codes are returned verbatim so the caller always has something to show.
func (r *Registry) DisplayNameOf(locale string) string {
	if l, ok := r.locales[locale]; ok && l.DisplayName != "" {
		return l.DisplayName
	}
	return locale
}

// AllMarkets returns every market code in declaration order.
func (r *Registry) AllMarkets() []string {
	return append([]string(nil), r.marketOrder...)
}

// AllLocales returns every locale code in declaration order.
func (r *Registry) AllLocales() []string {
	return append([]string(nil), r.localeOrder...)
}

// PublicSiteaccesses returns the public partitions (admin excluded) in no
// particular order, for callers that need to enumerate prefixes.
func (r *Registry) PublicSiteaccesses() []Siteaccess {
	out := make([]Siteaccess, 0, len(r.siteaccesses))
	for _, s := range r.siteaccesses {
		if s.Name == AdminSiteaccess {
			continue
		}
		out = append(out, s)
	}
	return out
}
