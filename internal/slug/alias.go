// internal/slug/alias.go
//
// Canonical path generation with virtual segments.
//
// Context
// -------
// Some content types carry a virtual URL segment: a path component that
// comes from the type rather than from any content-tree structure, e.g.
// /news/<slug> for news articles.  Landing pages and redirect records
// publish at the bare slug.  PathBuilder combines the virtual segment,
// the market prefix from the registry, and Slugify into the canonical
// path a piece of content is reachable at.

package slug

import (
	"strings"

	"github.com/yanizio/localeroute/internal/registry"
)

// contentTypeSegments maps a content type to its virtual URL segment.
// Types absent from the table, or mapped to "", publish at the bare slug.
var contentTypeSegments = map[string]string{
	"news":         "news",
	"insights":     "insights",
	"landing_page": "",
	"redirect":     "",
}

// UsesVirtualSegment reports whether the content type carries a virtual
// segment in its URLs.
func UsesVirtualSegment(contentType string) bool {
	return contentTypeSegments[contentType] != ""
}

// VirtualSegment returns the segment for a content type, and whether the
// type uses one at all.
func VirtualSegment(contentType string) (string, bool) {
	seg := contentTypeSegments[contentType]
	return seg, seg != ""
}

// AliasFor returns the market-independent canonical path for a content
// item: /<virtual-segment>/<slug>, or /<slug> for types without one.
func AliasFor(contentType, title string) string {
	return BuildPath(contentTypeSegments[contentType], Slugify(title))
}

// PathBuilder composes full market-scoped paths.
type PathBuilder struct {
	reg *registry.Registry
}

// NewPathBuilder returns a builder over the given registry.
func NewPathBuilder(reg *registry.Registry) PathBuilder {
	return PathBuilder{reg: reg}
}

// FullPath returns the complete path for content in a market:
// market prefix (omitted for the global market) + virtual segment + slug.
func (b PathBuilder) FullPath(market, contentType, title string) string {
	var segs []string
	if market != registry.GlobalMarket {
		if p := strings.Trim(b.reg.MarketURLPrefixOf(market), "/"); p != "" {
			segs = append(segs, p)
		}
	}
	if seg, ok := VirtualSegment(contentType); ok {
		segs = append(segs, seg)
	}
	segs = append(segs, Slugify(title))
	return "/" + strings.Join(segs, "/")
}
