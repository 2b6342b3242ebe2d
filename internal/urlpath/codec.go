// internal/urlpath/codec.go
//
// URL path building and parsing over the siteaccess prefix scheme.
//
// Context
// -------
// Public paths look like /<siteaccess-prefix>/<rest>; the prefix selects
// the siteaccess (and through it locale and market), the rest addresses
// content.  A path with no recognised prefix belongs to the global
// partition.  The Codec owns both directions: BuildFullURL composes a
// canonical outbound path for a (market, locale, path) triple, ParseURL
// decomposes an inbound path back into the triple.
//
// Prefix matching is deliberately strict: case-sensitive, and a prefix
// only matches when followed by "/" or end-of-string, so /th-enable is a
// global path rather than a th-en one.  Longer prefixes are tried first
// so a prefix can never shadow a longer sibling.  Parsing is total; any
// input yields exactly one result and never an error.
//
// Notes
// -----
// • The Codec precomputes the sorted prefix list at construction; build
//   one per Registry and share it.
// • Oxford commas, two spaces after periods.

package urlpath

import (
	"sort"
	"strings"

	"github.com/yanizio/localeroute/internal/registry"
)

// Parsed is the routing triple extracted from a path.
type Parsed struct {
	Market     string
	Locale     string
	Siteaccess string
}

// Codec builds and parses siteaccess-prefixed paths.  Immutable; safe for
// concurrent use.
type Codec struct {
	reg      *registry.Registry
	prefixes []prefixEntry // public prefixes, longest first
}

type prefixEntry struct {
	prefix     string
	siteaccess string
	locale     string
	market     string
}

// New precomputes the prefix table for the given registry.
func New(reg *registry.Registry) *Codec {
	c := &Codec{reg: reg}
	for _, s := range reg.PublicSiteaccesses() {
		if s.URLPrefix == "" {
			continue
		}
		c.prefixes = append(c.prefixes, prefixEntry{
			prefix:     s.URLPrefix,
			siteaccess: s.Name,
			locale:     s.Locale,
			market:     s.Market,
		})
	}
	sort.Slice(c.prefixes, func(i, j int) bool {
		a, b := c.prefixes[i].prefix, c.prefixes[j].prefix
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b // stable order among equal lengths
	})
	return c
}

// BuildFullURL returns the canonical outbound path for content at path in
// the given locale: the locale's siteaccess prefix plus the normalised
// path.  The market argument is advisory; the locale→siteaccess binding
// already disambiguates under the shipped tables.
func (c *Codec) BuildFullURL(market, locale, path string) string {
	_ = market

	siteaccess := c.reg.SiteaccessOf(locale)
	prefix := c.reg.URLPrefixOf(siteaccess)

	path = strings.Trim(path, "/")
	if path != "" {
		return prefix + "/" + path
	}
	return prefix
}

// ParseURL decomposes a path into its routing triple.  Unrecognised paths
// resolve to the global defaults; admin paths resolve to the reserved
// admin siteaccess with the global market and locale.
func (c *Codec) ParseURL(path string) Parsed {
	path = normalize(path)

	if hasSegmentPrefix(path, registry.AdminURLPrefix) {
		return Parsed{
			Market:     registry.GlobalMarket,
			Locale:     registry.GlobalLocale,
			Siteaccess: registry.AdminSiteaccess,
		}
	}

	for _, e := range c.prefixes {
		if hasSegmentPrefix(path, e.prefix) {
			return Parsed{Market: e.market, Locale: e.locale, Siteaccess: e.siteaccess}
		}
	}

	return Parsed{
		Market:     registry.GlobalMarket,
		Locale:     registry.GlobalLocale,
		Siteaccess: registry.GlobalSiteaccess,
	}
}

// StripLocalePrefix removes the admin prefix or the first matching public
// siteaccess prefix from path.  "/" is returned when nothing remains; the
// normalised path is returned unchanged when no prefix matches.
func (c *Codec) StripLocalePrefix(path string) string {
	path = normalize(path)

	if hasSegmentPrefix(path, registry.AdminURLPrefix) {
		return remainder(path, registry.AdminURLPrefix)
	}
	for _, e := range c.prefixes {
		if hasSegmentPrefix(path, e.prefix) {
			return remainder(path, e.prefix)
		}
	}
	return path
}

// MatchesSiteaccess reports whether path routes to the named siteaccess.
func (c *Codec) MatchesSiteaccess(path, siteaccessName string) bool {
	return c.ParseURL(path).Siteaccess == siteaccessName
}

// normalize collapses any input into a path with a single leading slash
// and no trailing slash.  "" and "/" both become "/".
func normalize(path string) string {
	return "/" + strings.Trim(path, "/")
}

// hasSegmentPrefix reports whether path starts with prefix on a segment
// boundary: the prefix is the whole path, or is followed by "/".
func hasSegmentPrefix(path, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

// remainder returns path with prefix removed, or "/" when empty.
func remainder(path, prefix string) string {
	rest := path[len(prefix):]
	if rest == "" {
		return "/"
	}
	return rest
}
