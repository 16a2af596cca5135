package content

import (
	"strings"
	"unicode"
)

// Slugify turns a title into a URL slug: lowercase, characters outside
// [a-z0-9_], whitespace and hyphen are dropped, then any run of whitespace,
// underscores and hyphens collapses to a single hyphen, with no hyphen at
// either end. Accented letters are dropped rather than transliterated.
func Slugify(text string) string {
	text = strings.ToLower(text)

	var slug strings.Builder
	pendingHyphen := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && slug.Len() > 0 {
				slug.WriteByte('-')
			}
			pendingHyphen = false
			slug.WriteRune(r)
		case r == '-', r == '_', unicode.IsSpace(r):
			pendingHyphen = true
		}
	}
	return slug.String()
}
