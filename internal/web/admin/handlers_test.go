package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avantiadvisory/avantiag.com/internal/ai"
	"github.com/avantiadvisory/avantiag.com/internal/assets"
	"github.com/avantiadvisory/avantiag.com/internal/content/store"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
	"github.com/avantiadvisory/avantiag.com/internal/storage/sqlite"
	"github.com/avantiadvisory/avantiag.com/internal/web/session"
)

const testPassword = "correct horse"

type fixture struct {
	handler  http.Handler
	store    *store.Store
	db       storage.Store
	sessions *session.Manager
}

func newFixture(t *testing.T, generator *ai.Generator) fixture {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(filepath.Join(dir, "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.CreateAdmin(context.Background(), storage.AdminUser{
		Email:        "admin@avantiag.com",
		PasswordHash: string(hash),
	}); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	bucket, err := assets.NewBucket(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("new bucket: %v", err)
	}
	sessions, err := session.NewManager([]byte("test-secret"), time.Hour, false)
	if err != nil {
		t.Fatalf("new session manager: %v", err)
	}
	contentStore := store.New(db, bucket)
	mount, err := New(contentStore, db, sessions, generator).Mount()
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	return fixture{handler: mount.Handler, store: contentStore, db: db, sessions: sessions}
}

// loginCookie returns the session cookie from a successful login.
func (f fixture) loginCookie(t *testing.T) *http.Cookie {
	t.Helper()
	form := url.Values{"email": {"admin@avantiag.com"}, "password": {testPassword}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/admin" {
		t.Fatalf("login status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func (f fixture) do(t *testing.T, cookie *http.Cookie, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func TestDashboardRequiresLogin(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	rr := f.do(t, nil, http.MethodGet, "/admin/", nil)
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/admin/login" {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	form := url.Values{"email": {"admin@avantiag.com"}, "password": {"nope"}}
	rr := f.do(t, nil, http.MethodPost, "/admin/login", form)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Credenciales inválidas") {
		t.Fatal("expected error message")
	}
}

func TestLoginRecordsLastLogin(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	f.loginCookie(t)
	admin, err := f.db.GetAdminByEmail(context.Background(), "admin@avantiag.com")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if admin.LastLoginAt.IsZero() {
		t.Fatal("last login not recorded")
	}
}

func TestDashboardRenders(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	cookie := f.loginCookie(t)

	rr := f.do(t, cookie, http.MethodGet, "/admin/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Dashboard") || !strings.Contains(body, "admin@avantiag.com") {
		t.Fatal("expected dashboard shell")
	}
}

func TestUpdatePageSectionPersists(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	cookie := f.loginCookie(t)

	form := url.Values{
		"lang":           {"es"},
		"page":           {"home"},
		"section":        {"hero"},
		"field.title":    {"Nuevo Título"},
		"field.subtitle": {"Nueva Bajada"},
	}
	rr := f.do(t, cookie, http.MethodPost, "/admin/pages", form)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}
	if got := f.store.Pages("es").Home.Hero.Title; got != "Nuevo Título" {
		t.Fatalf("title = %q", got)
	}

	rr = f.do(t, cookie, http.MethodGet, "/admin/pages?page=home&lang=es", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Nuevo Título") {
		t.Fatalf("editor did not show saved value, status = %d", rr.Code)
	}
}

func TestBlogCreateAndDelete(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	cookie := f.loginCookie(t)

	form := url.Values{
		"lang":    {"es"},
		"title":   {"Guía de Cumplimiento"},
		"content": {"<p>Detalle</p>"},
	}
	rr := f.do(t, cookie, http.MethodPost, "/admin/blog", form)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}
	var created int64
	for _, post := range f.store.Posts("es") {
		if post.Title == "Guía de Cumplimiento" {
			created = post.ID
		}
	}
	if created == 0 {
		t.Fatal("post not created")
	}

	rr = f.do(t, cookie, http.MethodPost, fmt.Sprintf("/admin/blog/%d/delete", created), url.Values{"lang": {"es"}})
	if rr.Code != http.StatusFound {
		t.Fatalf("delete status = %d", rr.Code)
	}
	if _, ok := f.store.Post("es", created); ok {
		t.Fatal("post not deleted")
	}
}

func TestAIFormUnavailableWithoutGenerator(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	cookie := f.loginCookie(t)

	rr := f.do(t, cookie, http.MethodGet, "/admin/ai", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "no está configurado") {
		t.Fatal("expected unavailable notice")
	}
}

func TestAIGenerateShowsDraft(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"{\"title\":\"Panorama 2025\",\"subtitle\":\"\",\"category\":\"Impuestos\",\"excerpt\":\"Resumen\",\"content\":\"<p>Cuerpo</p>\"}"}]}}]}`)
	}))
	defer upstream.Close()

	generator := ai.NewGenerator(ai.GeneratorConfig{APIKey: "key", Endpoint: upstream.URL})
	f := newFixture(t, generator)
	cookie := f.loginCookie(t)

	form := url.Values{"topic": {"Cambios fiscales"}}
	rr := f.do(t, cookie, http.MethodPost, "/admin/ai", form)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Panorama 2025") {
		t.Fatal("expected generated draft")
	}
}

func TestInboxMarkReadAndDelete(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	cookie := f.loginCookie(t)

	msgID, err := f.db.CreateMessage(context.Background(), storage.MessageRecord{
		Name: "Ana", Email: "ana@example.com", Reason: "Consulta General", Message: "Hola",
	})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}

	rr := f.do(t, cookie, http.MethodGet, "/admin/inbox", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Ana") {
		t.Fatalf("inbox status = %d", rr.Code)
	}

	rr = f.do(t, cookie, http.MethodPost, fmt.Sprintf("/admin/inbox/%d/read", msgID), nil)
	if rr.Code != http.StatusFound {
		t.Fatalf("mark read status = %d", rr.Code)
	}
	if f.store.UnreadCount() != 0 {
		t.Fatalf("unread = %d", f.store.UnreadCount())
	}

	rr = f.do(t, cookie, http.MethodPost, fmt.Sprintf("/admin/inbox/%d/delete", msgID), nil)
	if rr.Code != http.StatusFound {
		t.Fatalf("delete status = %d", rr.Code)
	}
	if len(f.store.Messages()) != 0 {
		t.Fatalf("messages = %+v", f.store.Messages())
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	cookie := f.loginCookie(t)

	rr := f.do(t, cookie, http.MethodPost, "/admin/logout", nil)
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/admin/login" {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
	cleared := rr.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Fatalf("cookies = %+v", cleared)
	}
}
