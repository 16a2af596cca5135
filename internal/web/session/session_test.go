package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m, err := NewManager([]byte("test-secret"), ttl, false)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m
}

func requestWithCookies(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, cookie := range w.Result().Cookies() {
		r.AddCookie(cookie)
	}
	return r
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()
	m := newTestManager(t, time.Hour)

	w := httptest.NewRecorder()
	if err := m.Issue(w, 7, "admin@avantiag.com"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := m.Verify(requestWithCookies(w))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.AdminID != 7 || claims.Email != "admin@avantiag.com" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestVerifyMissingCookie(t *testing.T) {
	t.Parallel()
	m := newTestManager(t, time.Hour)

	_, err := m.Verify(httptest.NewRequest(http.MethodGet, "/admin", nil))
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	t.Parallel()
	issuer := newTestManager(t, time.Hour)
	verifier, err := NewManager([]byte("other-secret"), time.Hour, false)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	w := httptest.NewRecorder()
	if err := issuer.Issue(w, 1, "a@b.c"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(requestWithCookies(w)); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()
	m := newTestManager(t, time.Nanosecond)

	w := httptest.NewRecorder()
	if err := m.Issue(w, 1, "a@b.c"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := m.Verify(requestWithCookies(w)); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()
	m := newTestManager(t, time.Hour)

	w := httptest.NewRecorder()
	m.Clear(w)
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("cookies = %+v", cookies)
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewManager(nil, time.Hour, false); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
