// internal/slug/alias_test.go

package slug

import (
	"testing"

	"github.com/yanizio/localeroute/internal/registry"
)

func TestAliasFor(t *testing.T) {
	cases := []struct{ contentType, title, want string }{
		{"news", "Breaking News", "/news/breaking-news"},
		{"insights", "Market Outlook 2025", "/insights/market-outlook-2025"},
		{"landing_page", "About Us", "/about-us"},
		{"redirect", "Old Promo", "/old-promo"},
		{"unknown_type", "Some Page", "/some-page"},
	}
	for _, c := range cases {
		if got := AliasFor(c.contentType, c.title); got != c.want {
			t.Errorf("AliasFor(%q, %q) = %q, want %q", c.contentType, c.title, got, c.want)
		}
	}
}

func TestVirtualSegment(t *testing.T) {
	if seg, ok := VirtualSegment("news"); !ok || seg != "news" {
		t.Errorf("VirtualSegment(news) = %q, %v", seg, ok)
	}
	if _, ok := VirtualSegment("landing_page"); ok {
		t.Error("landing_page should not use a virtual segment")
	}
	if UsesVirtualSegment("redirect") {
		t.Error("redirect should not use a virtual segment")
	}
}

func TestPathBuilder_FullPath(t *testing.T) {
	b := NewPathBuilder(registry.Default())

	cases := []struct{ market, contentType, title, want string }{
		{"global", "news", "Breaking News", "/news/breaking-news"},
		{"th", "news", "Breaking News", "/th-en/news/breaking-news"},
		{"my", "insights", "Outlook", "/my-en/insights/outlook"},
		{"th", "landing_page", "Contact", "/th-en/contact"},
		{"global", "landing_page", "Contact", "/contact"},
	}
	for _, c := range cases {
		if got := b.FullPath(c.market, c.contentType, c.title); got != c.want {
			t.Errorf("FullPath(%q, %q, %q) = %q, want %q",
				c.market, c.contentType, c.title, got, c.want)
		}
	}
}
