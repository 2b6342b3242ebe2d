// internal/slug/slug.go
//
// Deterministic slug generation.
//
// Rules (Slugify)
// ---------------
// 1. Convert any run of characters that are neither a letter nor a digit
//    (Unicode-aware) to one “-”.
// 2. Transliterate remaining non-ASCII letters to their closest ASCII
//    equivalents; characters with no equivalent are dropped.
// 3. Strip everything that is not an ASCII letter, digit, “-”, or “_”.
// 4. Trim leading and trailing “-”.
// 5. Collapse consecutive “-” to a single “-”.
// 6. Lower-case the result.
// 7. If nothing remains, return the sentinel "n-a".
//
// The function is pure and idempotent; the output always matches
// ^[a-z0-9-]+$.  Titles that differ only in case, whitespace runs, or
// punctuation that reduces to the same separator produce the same slug,
// which is what keeps published URLs stable across editorial retitling.
//
// Notes
// -----
// • Transliteration uses gosimple/unidecode, the table behind the widely
//   used gosimple/slug package.
// • Oxford commas, two spaces after periods.

package slug

import (
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
)

// Empty is returned when the input reduces to nothing.
const Empty = "n-a"

// Slugify converts free text into a URL-safe token.
func Slugify(text string) string {
	// 1. Letter/digit runs survive; everything else becomes one dash.
	var b strings.Builder
	b.Grow(len(text))
	lastWasDash := false
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastWasDash = false
			continue
		}
		if !lastWasDash {
			b.WriteByte('-')
			lastWasDash = true
		}
	}

	// 2. Transliterate what is left to ASCII.
	s := unidecode.Unidecode(b.String())

	// 3. Strip anything outside [A-Za-z0-9-_].  Transliteration may emit
	// spaces or punctuation for exotic code points; those go here.
	var c strings.Builder
	c.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			c.WriteRune(r)
		}
	}

	// 4–6. Trim, collapse, lower-case.
	s = strings.Trim(c.String(), "-")
	s = collapseDashes(s)
	s = strings.ToLower(s)

	// 7. Never return an empty slug.
	if s == "" {
		return Empty
	}
	return s
}

// collapseDashes reduces every run of “-” to a single one.
func collapseDashes(s string) string {
	if !strings.Contains(s, "--") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	lastWasDash := false
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			if lastWasDash {
				continue
			}
			lastWasDash = true
		} else {
			lastWasDash = false
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// BuildPath joins parent + child with exactly one leading slash and no
// duplicate separators.
func BuildPath(parent, child string) string {
	parent = strings.Trim(parent, "/")
	child = strings.Trim(child, "/")

	switch {
	case parent == "" && child == "":
		return "/"
	case parent == "":
		return "/" + child
	case child == "":
		return "/" + parent
	default:
		return "/" + parent + "/" + child
	}
}
