package public

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avantiadvisory/avantiag.com/internal/content/store"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
	"github.com/avantiadvisory/avantiag.com/internal/storage/sqlite"
	"github.com/avantiadvisory/avantiag.com/internal/web/i18nhttp"
)

func newTestHandler(t *testing.T) (http.Handler, storage.Store) {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mount, err := New(store.New(db, nil)).Mount()
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	return mount.Handler, db
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestHomeRendersDefaultSpanish(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(t)

	rr := get(t, h, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `lang="es"`) {
		t.Fatalf("expected Spanish page, got %q", body[:120])
	}
	if !strings.Contains(body, "Impulsando su Desarrollo") {
		t.Fatal("expected default hero subtitle")
	}
}

func TestHomeEnglishQueryPersistsCookie(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(t)

	rr := get(t, h, "/?lang=en")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `lang="en"`) {
		t.Fatal("expected English page")
	}
	cookie := rr.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, i18nhttp.LangCookieName+"=en") {
		t.Fatalf("cookie header %q", cookie)
	}
}

func TestResourcesListsDefaultPosts(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(t)

	rr := get(t, h, "/resources")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Claves de la Reforma Fiscal") {
		t.Fatal("expected default article in listing")
	}
}

func TestResourceDetailUnknownRedirects(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(t)

	rr := get(t, h, "/resources/9999")
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/resources" {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestServicePageRenders(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(t)

	rr := get(t, h, "/services/impuestos-empresas")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Impuestos") {
		t.Fatal("expected service title")
	}
	if !strings.Contains(body, "Servicios Relacionados") {
		t.Fatal("expected related services block")
	}
}

func TestUnknownServiceRedirectsHome(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(t)

	rr := get(t, h, "/services/nope")
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/" {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestUnknownPathRedirectsHome(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(t)

	rr := get(t, h, "/no-such-page")
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/" {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestSubmitContactStoresMessage(t *testing.T) {
	t.Parallel()
	h, db := newTestHandler(t)

	form := url.Values{
		"name":    {"Ana"},
		"email":   {"ana@example.com"},
		"message": {"Necesito ayuda con mi declaración."},
		"reason":  {"Impuestos Personas"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/contact?sent=1" {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}

	stored, err := db.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(stored) != 1 || stored[0].Reason != "Impuestos Personas" {
		t.Fatalf("messages = %+v", stored)
	}
}

func TestSubmitContactMissingFieldsRedirectsBack(t *testing.T) {
	t.Parallel()
	h, db := newTestHandler(t)

	form := url.Values{"name": {"Ana"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d", rr.Code)
	}
	stored, err := db.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("messages = %+v", stored)
	}
}
