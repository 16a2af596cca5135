// Package i18nhttp resolves the visitor's language for HTTP requests.
package i18nhttp

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/avantiadvisory/avantiag.com/internal/platform/i18n"
	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to switch languages.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "avanti_lang"
)

// ResolveCode determines the language code ("es" or "en") for a request:
// query parameter, then cookie, then Accept-Language, then the default.
// The bool reports whether the choice should be persisted as a cookie.
func ResolveCode(r *http.Request) (string, bool) {
	if r == nil {
		return platformi18n.Code(platformi18n.DefaultTag()), false
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := platformi18n.ParseTag(value); ok {
			return platformi18n.Code(tag), true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return platformi18n.Code(tag), false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.Code(platformi18n.MatchTags(tags)), false
		}
	}
	return platformi18n.Code(platformi18n.DefaultTag()), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, code string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageURL returns the current path with the lang parameter replaced.
func LanguageURL(path, rawQuery, code string) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(LangParam, code)
	return path + "?" + values.Encode()
}
