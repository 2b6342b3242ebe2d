// internal/registry/registry_test.go
//
// Table-driven checks over the default tables plus the default-on-miss
// contract: unknown keys never error, they resolve to the global triple.

package registry

import "testing"

func TestMarketOf(t *testing.T) {
	r := Default()

	cases := []struct {
		siteaccess string
		want       string
	}{
		{"global-en", "global"},
		{"my-en", "my"},
		{"th-en", "th"},
		{"th-th", "th"},
		{"admin", "global"},
		{"nope", "global"},
		{"", "global"},
	}
	for _, c := range cases {
		if got := r.MarketOf(c.siteaccess); got != c.want {
			t.Errorf("MarketOf(%q) = %q, want %q", c.siteaccess, got, c.want)
		}
	}
}

func TestLocalesOf_ChainsEndInGlobal(t *testing.T) {
	r := Default()

	for _, m := range r.AllMarkets() {
		chain := r.LocalesOf(m)
		if len(chain) == 0 {
			t.Fatalf("LocalesOf(%q) is empty", m)
		}
		if last := chain[len(chain)-1]; last != GlobalLocale {
			t.Errorf("LocalesOf(%q) ends in %q, want %q", m, last, GlobalLocale)
		}
	}

	// Unknown market → single-element global chain.
	chain := r.LocalesOf("atlantis")
	if len(chain) != 1 || chain[0] != GlobalLocale {
		t.Errorf("LocalesOf(unknown) = %v, want [%s]", chain, GlobalLocale)
	}
}

func TestLocalesOf_ReturnsCopy(t *testing.T) {
	r := Default()

	chain := r.LocalesOf("th")
	chain[0] = "mutated"

	if again := r.LocalesOf("th"); again[0] != "eng-TH" {
		t.Fatalf("registry chain mutated through returned slice: %v", again)
	}
}

func TestSiteaccessOf(t *testing.T) {
	r := Default()

	cases := []struct{ locale, want string }{
		{"eng-GB", "global-en"},
		{"eng-MY", "my-en"},
		{"eng-TH", "th-en"},
		{"tha-TH", "th-th"},
		{"fra-FR", "global-en"},
	}
	for _, c := range cases {
		if got := r.SiteaccessOf(c.locale); got != c.want {
			t.Errorf("SiteaccessOf(%q) = %q, want %q", c.locale, got, c.want)
		}
	}
}

func TestURLPrefixOf(t *testing.T) {
	r := Default()

	cases := []struct{ name, want string }{
		{"global-en", "/global-en"},
		{"my-en", "/my-en"},
		{"th-en", "/th-en"},
		{"th-th", "/th-th"},
		{"admin", "/admin"},
		{"unknown", ""},
	}
	for _, c := range cases {
		if got := r.URLPrefixOf(c.name); got != c.want {
			t.Errorf("URLPrefixOf(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMarketURLPrefixOf(t *testing.T) {
	r := Default()

	if got := r.MarketURLPrefixOf("th"); got != "/th-en" {
		t.Errorf("MarketURLPrefixOf(th) = %q, want /th-en", got)
	}
	if got := r.MarketURLPrefixOf("unknown"); got != "" {
		t.Errorf("MarketURLPrefixOf(unknown) = %q, want empty", got)
	}
}

func TestDisplayNameOf_FallsBackToCode(t *testing.T) {
	r := Default()

	if got := r.DisplayNameOf("tha-TH"); got != "ภาษาไทย (Thai)" {
		t.Errorf("DisplayNameOf(tha-TH) = %q", got)
	}
	if got := r.DisplayNameOf("xxx-XX"); got != "xxx-XX" {
		t.Errorf("DisplayNameOf(unknown) = %q, want raw code", got)
	}
}

func TestAllMarketsAndLocales_Order(t *testing.T) {
	r := Default()

	wantMarkets := []string{"global", "my", "th"}
	gotMarkets := r.AllMarkets()
	if len(gotMarkets) != len(wantMarkets) {
		t.Fatalf("AllMarkets() = %v", gotMarkets)
	}
	for i := range wantMarkets {
		if gotMarkets[i] != wantMarkets[i] {
			t.Fatalf("AllMarkets() = %v, want %v", gotMarkets, wantMarkets)
		}
	}

	wantLocales := []string{"eng-GB", "eng-MY", "eng-TH", "tha-TH"}
	gotLocales := r.AllLocales()
	if len(gotLocales) != len(wantLocales) {
		t.Fatalf("AllLocales() = %v", gotLocales)
	}
	for i := range wantLocales {
		if gotLocales[i] != wantLocales[i] {
			t.Fatalf("AllLocales() = %v, want %v", gotLocales, wantLocales)
		}
	}
}

func TestAlternateTables(t *testing.T) {
	r := New(Tables{
		Locales: []Locale{{Code: "eng-GB", DisplayName: "English"}},
		Markets: []Market{{Code: "global", Locales: []string{"eng-GB"}, URLPrefix: "/en"}},
		Siteaccesses: []Siteaccess{
			{Name: "en", URLPrefix: "/en", Locale: "eng-GB", Market: "global"},
		},
	})

	if got := r.SiteaccessOf("eng-GB"); got != "en" {
		t.Errorf("SiteaccessOf on alternate tables = %q, want en", got)
	}
	if got := r.URLPrefixOf("admin"); got != AdminURLPrefix {
		t.Errorf("admin prefix = %q, want %q even with alternate tables", got, AdminURLPrefix)
	}
}
