// internal/langswitch/switcher_test.go
//
// fakeSet stands in for a content item's translation set so the fallback
// walks can be exercised without the content store.

package langswitch

import (
	"testing"

	"github.com/yanizio/localeroute/internal/registry"
	"github.com/yanizio/localeroute/internal/urlpath"
)

type fakeSet struct {
	locales map[string]bool
	initial string
}

func (f *fakeSet) HasLocale(code string) bool { return f.locales[code] }
func (f *fakeSet) InitialLocale() string      { return f.initial }

func newSwitcher() *Switcher {
	reg := registry.Default()
	return New(reg, urlpath.New(reg))
}

func TestAvailableLanguages(t *testing.T) {
	sw := newSwitcher()
	set := &fakeSet{locales: map[string]bool{"eng-GB": true, "tha-TH": true}, initial: "eng-GB"}

	langs := sw.AvailableLanguages(set, "/news/breaking-news", "th-en")

	if len(langs) != 4 {
		t.Fatalf("entries = %d, want every registry locale", len(langs))
	}

	th := langs["tha-TH"]
	if !th.Available || th.Siteaccess != "th-th" || th.Market != "th" {
		t.Fatalf("tha-TH entry = %+v", th)
	}
	if th.URL != "/th-th/news/breaking-news" {
		t.Fatalf("tha-TH URL = %q", th.URL)
	}

	// eng-TH has no translation but must still carry a deep link and the
	// current flag for the th-en partition.
	en := langs["eng-TH"]
	if en.Available {
		t.Fatal("eng-TH should be unavailable")
	}
	if !en.Current {
		t.Fatal("eng-TH should be current for siteaccess th-en")
	}
	if en.URL != "/th-en/news/breaking-news" {
		t.Fatalf("eng-TH URL = %q", en.URL)
	}
	if en.DisplayName != "English (Thailand)" {
		t.Fatalf("eng-TH display name = %q", en.DisplayName)
	}

	if langs["eng-GB"].Current {
		t.Fatal("eng-GB must not be current for siteaccess th-en")
	}
}

func TestLanguagesByMarket(t *testing.T) {
	sw := newSwitcher()
	set := &fakeSet{locales: map[string]bool{"eng-GB": true}, initial: "eng-GB"}

	grouped := sw.LanguagesByMarket(set, "/about", "global-en")

	if len(grouped) != 3 {
		t.Fatalf("markets = %d, want 3", len(grouped))
	}
	if len(grouped["th"]) != 2 {
		t.Fatalf("th market entries = %d, want eng-TH and tha-TH", len(grouped["th"]))
	}
	if _, ok := grouped["global"]["eng-GB"]; !ok {
		t.Fatal("global market missing eng-GB")
	}
}

func TestGetTranslation_WalksChainInOrder(t *testing.T) {
	sw := newSwitcher()

	// th chain is eng-TH → tha-TH → eng-GB.  With only tha-TH and eng-GB
	// present, a request for eng-TH must pick tha-TH, not eng-GB.
	set := &fakeSet{locales: map[string]bool{"tha-TH": true, "eng-GB": true}, initial: "tha-TH"}
	code, ok := sw.GetTranslation(set, "eng-TH")
	if !ok || code != "tha-TH" {
		t.Fatalf("GetTranslation(eng-TH) = %q, %v, want tha-TH", code, ok)
	}

	// Exact match wins outright.
	set = &fakeSet{locales: map[string]bool{"eng-TH": true}, initial: "eng-TH"}
	if code, ok = sw.GetTranslation(set, "eng-TH"); !ok || code != "eng-TH" {
		t.Fatalf("exact match = %q, %v", code, ok)
	}

	// Exhausted chain → not ok.
	set = &fakeSet{locales: map[string]bool{}, initial: "eng-GB"}
	if _, ok = sw.GetTranslation(set, "eng-TH"); ok {
		t.Fatal("empty set should exhaust the chain")
	}
}

func TestIsFallbackLanguage(t *testing.T) {
	sw := newSwitcher()
	set := &fakeSet{locales: map[string]bool{"eng-GB": true}, initial: "eng-GB"}

	if !sw.IsFallbackLanguage(set, "tha-TH") {
		t.Fatal("tha-TH should be served via fallback")
	}
	if sw.IsFallbackLanguage(set, "eng-GB") {
		t.Fatal("eng-GB is the authored locale, not a fallback")
	}

	// A translated locale is never a fallback even when not the initial.
	set = &fakeSet{locales: map[string]bool{"eng-GB": true, "tha-TH": true}, initial: "eng-GB"}
	if sw.IsFallbackLanguage(set, "tha-TH") {
		t.Fatal("present translation must not count as fallback")
	}
}

func TestGetDisplayedLanguage(t *testing.T) {
	sw := newSwitcher()

	set := &fakeSet{locales: map[string]bool{"tha-TH": true}, initial: "tha-TH"}
	if got := sw.GetDisplayedLanguage(set, "eng-TH"); got != "tha-TH" {
		t.Fatalf("displayed = %q, want tha-TH", got)
	}

	// Chain exhausted → authored locale.
	set = &fakeSet{locales: map[string]bool{}, initial: "may-MY"}
	if got := sw.GetDisplayedLanguage(set, "eng-TH"); got != "may-MY" {
		t.Fatalf("displayed = %q, want authored locale", got)
	}
}

func TestAvailableMarkets(t *testing.T) {
	sw := newSwitcher()

	// tha-TH is only on the th chain; eng-GB terminates every chain.
	set := &fakeSet{locales: map[string]bool{"tha-TH": true}, initial: "tha-TH"}
	markets := sw.AvailableMarkets(set)
	if len(markets) != 1 || markets[0] != "th" {
		t.Fatalf("markets = %v, want [th]", markets)
	}

	set = &fakeSet{locales: map[string]bool{"eng-GB": true}, initial: "eng-GB"}
	markets = sw.AvailableMarkets(set)
	if len(markets) != 3 {
		t.Fatalf("markets = %v, want all three via the global terminator", markets)
	}

	set = &fakeSet{locales: map[string]bool{}, initial: "eng-GB"}
	if markets = sw.AvailableMarkets(set); len(markets) != 0 {
		t.Fatalf("markets = %v, want none for an untranslated item", markets)
	}
}
