package web

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/assets"
	"github.com/avantiadvisory/avantiag.com/internal/content/store"
	"github.com/avantiadvisory/avantiag.com/internal/storage/sqlite"
	"github.com/avantiadvisory/avantiag.com/internal/web/session"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(filepath.Join(dir, "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	bucket, err := assets.NewBucket(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("new bucket: %v", err)
	}
	sessions, err := session.NewManager([]byte("test-secret"), time.Hour, false)
	if err != nil {
		t.Fatalf("new session manager: %v", err)
	}
	handler, err := NewHandler(Config{
		ContentStore: store.New(db, bucket),
		DB:           db,
		Sessions:     sessions,
		Bucket:       bucket,
	})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return handler
}

func TestHandlerServesHome(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("request id missing")
	}
	if !strings.Contains(rr.Body.String(), "Avanti Advisory Group") {
		t.Fatal("expected site chrome")
	}
}

func TestHandlerServesStylesheet(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestHandlerGuardsAdmin(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/", nil))
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/admin/login" {
		t.Fatalf("status = %d location = %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestNewServerRequiresAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("expected error for missing address")
	}
}
