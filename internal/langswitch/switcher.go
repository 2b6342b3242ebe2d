// internal/langswitch/switcher.go
//
// Language availability and fallback resolution.
//
// Context
// -------
// The language switcher in the page header must list every locale the
// platform knows, not only the ones a given content item is translated
// into: an unavailable locale renders disabled but still deep-links to
// where the translation will live once it exists.  AvailableLanguages
// therefore iterates the full registry and computes, per locale, the
// availability flag, the current-partition flag, and the outbound URL
// through the path codec.
//
// GetTranslation and GetDisplayedLanguage walk the requested locale's
// market fallback chain in registry order, so a th-en visitor reading an
// article authored only in Thai sees tha-TH, then eng-GB if Thai is
// missing too.
//
// Notes
// -----
// • The Switcher is stateless; translation data arrives per call via the
//   TranslationSet contract, which internal/content.Item satisfies.
// • Oxford commas, two spaces after periods.

package langswitch

import (
	"github.com/yanizio/localeroute/internal/registry"
	"github.com/yanizio/localeroute/internal/urlpath"
)

// TranslationSet is the minimal contract over a content item's
// translations.  Defined here so this package depends on content data,
// not on the content package.
type TranslationSet interface {
	HasLocale(code string) bool
	InitialLocale() string
}

// Entry describes one locale's availability for a content item.
type Entry struct {
	Siteaccess  string `json:"siteaccess"`
	Locale      string `json:"locale"`
	Market      string `json:"market"`
	DisplayName string `json:"displayName"`
	URL         string `json:"url"`
	Available   bool   `json:"available"`
	Current     bool   `json:"current"`
}

// Switcher computes per-locale availability over a registry and codec.
type Switcher struct {
	reg   *registry.Registry
	codec *urlpath.Codec
}

// New returns a Switcher over the given registry and codec.
func New(reg *registry.Registry, codec *urlpath.Codec) *Switcher {
	return &Switcher{reg: reg, codec: codec}
}

// AvailableLanguages returns an entry for every registry locale.  The
// URL is built against contentPath whether or not the translation
// exists, so disabled entries still deep-link.
func (s *Switcher) AvailableLanguages(set TranslationSet, contentPath, currentSiteaccess string) map[string]Entry {
	out := make(map[string]Entry, len(s.reg.AllLocales()))
	for _, locale := range s.reg.AllLocales() {
		siteaccess := s.reg.SiteaccessOf(locale)
		market := s.reg.MarketOf(siteaccess)

		out[locale] = Entry{
			Siteaccess:  siteaccess,
			Locale:      locale,
			Market:      market,
			DisplayName: s.reg.DisplayNameOf(locale),
			URL:         s.codec.BuildFullURL(market, locale, contentPath),
			Available:   set.HasLocale(locale),
			Current:     siteaccess == currentSiteaccess,
		}
	}
	return out
}

// LanguagesByMarket groups AvailableLanguages output by market code.
func (s *Switcher) LanguagesByMarket(set TranslationSet, contentPath, currentSiteaccess string) map[string]map[string]Entry {
	grouped := make(map[string]map[string]Entry)
	for locale, entry := range s.AvailableLanguages(set, contentPath, currentSiteaccess) {
		if grouped[entry.Market] == nil {
			grouped[entry.Market] = make(map[string]Entry)
		}
		grouped[entry.Market][locale] = entry
	}
	return grouped
}

// HasTranslation reports whether a translation exists for locale.
func (s *Switcher) HasTranslation(set TranslationSet, locale string) bool {
	return set.HasLocale(locale)
}

// GetTranslation returns the locale whose translation should serve a
// request for the given locale: the exact locale when present, else the
// first present locale on its market's fallback chain.  ok is false when
// the chain exhausts without a match.
func (s *Switcher) GetTranslation(set TranslationSet, locale string) (code string, ok bool) {
	if set.HasLocale(locale) {
		return locale, true
	}
	market := s.reg.MarketOf(s.reg.SiteaccessOf(locale))
	for _, fallback := range s.reg.LocalesOf(market) {
		if set.HasLocale(fallback) {
			return fallback, true
		}
	}
	return "", false
}

// IsFallbackLanguage reports whether serving requestedLocale would show
// fallback content: the item was authored elsewhere and has no
// translation for the requested locale.
func (s *Switcher) IsFallbackLanguage(set TranslationSet, requestedLocale string) bool {
	return set.InitialLocale() != requestedLocale && !set.HasLocale(requestedLocale)
}

// GetDisplayedLanguage mirrors GetTranslation's walk but always answers:
// when the chain exhausts it falls back to the item's authored locale.
func (s *Switcher) GetDisplayedLanguage(set TranslationSet, requestedLocale string) string {
	if code, ok := s.GetTranslation(set, requestedLocale); ok {
		return code
	}
	return set.InitialLocale()
}

// AvailableMarkets returns every market, in registry order, whose
// fallback chain contains at least one present translation.
func (s *Switcher) AvailableMarkets(set TranslationSet) []string {
	var out []string
	for _, market := range s.reg.AllMarkets() {
		for _, locale := range s.reg.LocalesOf(market) {
			if set.HasLocale(locale) {
				out = append(out, market)
				break
			}
		}
	}
	return out
}
