package utils

import (
	"strings"
	"unicode"
)

// Slugify reduces a name to a URL-safe slug: lowercase ASCII letters,
// digits, and single dashes. Non-Latin input (Georgian business names) can
// reduce to nothing, so callers should fall back to a random slug when the
// result is empty.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
