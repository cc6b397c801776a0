package headings

import (
	"strings"
	"unicode"
)

// Slugify converts heading text into a lowercase fragment identifier.
//
// Only ASCII letters and digits, whitespace and hyphens survive; anything else,
// accented or non-Latin letters included, is dropped. Each run of whitespace
// becomes a single hyphen and leading and trailing hyphens are trimmed.
// Existing hyphens are kept as-is, so "a - b" yields "a---b".
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inSpace := false
	for _, r := range strings.ToLower(text) {
		switch {
		case isSpace(r):
			inSpace = true
		case r == '-' || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9'):
			if inSpace {
				b.WriteByte('-')
				inSpace = false
			}
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "-")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
