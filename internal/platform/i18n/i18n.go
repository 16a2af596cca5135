// Package i18n defines the site's supported languages and tag resolution.
//
// The site is bilingual: Spanish is the canonical content language and
// English the secondary one. Every piece of managed content exists once per
// language, so language selection never triggers a storage round trip.
package i18n

import "golang.org/x/text/language"

var (
	// Spanish is the default site language.
	Spanish = language.MustParse("es")
	// English is the secondary site language.
	English = language.MustParse("en")
)

var supported = []language.Tag{Spanish, English}

var matcher = language.NewMatcher(supported)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return Spanish
}

// ParseTag parses a raw language value into a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	for _, candidate := range supported {
		if candidate == tag {
			return candidate, true
		}
	}
	// Regional variants (es-MX, en-US) collapse to their base language.
	if base, confidence := tag.Base(); confidence != language.No {
		for _, candidate := range supported {
			if candidateBase, _ := candidate.Base(); candidateBase == base {
				return candidate, true
			}
		}
	}
	return language.Tag{}, false
}

// MatchTags picks the best supported tag for an Accept-Language preference list.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	if index < 0 || index >= len(supported) {
		return DefaultTag()
	}
	return supported[index]
}

// Code returns the two-letter storage code for a supported tag.
func Code(tag language.Tag) string {
	if tag == English {
		return "en"
	}
	return "es"
}

// FromCode maps a storage language code to a supported tag.
func FromCode(code string) language.Tag {
	if code == "en" {
		return English
	}
	return Spanish
}
