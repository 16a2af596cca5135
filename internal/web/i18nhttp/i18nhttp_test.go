package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResolveCodeDefaultsToSpanish(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	code, persist := ResolveCode(r)
	if code != "es" || persist {
		t.Fatalf("ResolveCode = %q, %t", code, persist)
	}
}

func TestResolveCodeQueryWins(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "es"})
	code, persist := ResolveCode(r)
	if code != "en" || !persist {
		t.Fatalf("ResolveCode = %q, %t", code, persist)
	}
}

func TestResolveCodeCookieBeatsAcceptLanguage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	r.Header.Set("Accept-Language", "es-MX")
	code, _ := ResolveCode(r)
	if code != "en" {
		t.Fatalf("code = %q", code)
	}
}

func TestResolveCodeAcceptLanguage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "en-GB,en;q=0.9")
	code, _ := ResolveCode(r)
	if code != "en" {
		t.Fatalf("code = %q", code)
	}
}

func TestResolveCodeIgnoresUnsupported(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
	code, persist := ResolveCode(r)
	if code != "es" || persist {
		t.Fatalf("ResolveCode = %q, %t", code, persist)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	SetLanguageCookie(w, "en")
	header := w.Header().Get("Set-Cookie")
	if !strings.Contains(header, LangCookieName+"=en") {
		t.Fatalf("cookie header %q", header)
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	if got := LanguageURL("/about", "", "en"); got != "/about?lang=en" {
		t.Fatalf("LanguageURL = %q", got)
	}
	if got := LanguageURL("/about", "lang=es&x=1", "en"); !strings.Contains(got, "lang=en") || !strings.Contains(got, "x=1") {
		t.Fatalf("LanguageURL = %q", got)
	}
}
