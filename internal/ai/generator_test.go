package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateUnavailableWithoutKey(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GeneratorConfig{})
	if g.Available() {
		t.Fatal("generator should be unavailable without key")
	}
	_, err := g.Generate(context.Background(), Request{Topic: "FIRPTA"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGenerateParsesArticle(t *testing.T) {
	t.Parallel()

	article := map[string]string{
		"title":    "FIRPTA en 2025",
		"category": "Fiscalidad",
		"excerpt":  "Resumen.",
		"content":  "<p>Cuerpo.</p>",
	}
	articleJSON, _ := json.Marshal(article)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": string(articleJSON)}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	g := NewGenerator(GeneratorConfig{APIKey: "test-key", Endpoint: server.URL})
	draft, err := g.Generate(context.Background(), Request{Topic: "FIRPTA", Tone: "Formal"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if draft.Title != "FIRPTA en 2025" || draft.Category != "Fiscalidad" {
		t.Fatalf("unexpected draft %+v", draft)
	}
	if draft.Author != draftAuthor {
		t.Fatalf("author = %q", draft.Author)
	}
	if draft.Image == "" || draft.Date == "" {
		t.Fatal("draft not stamped")
	}
}

func TestGenerateRejectsBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := NewGenerator(GeneratorConfig{APIKey: "k", Endpoint: server.URL})
	if _, err := g.Generate(context.Background(), Request{Topic: "x"}); err == nil {
		t.Fatal("expected status error")
	}
}

func TestGenerateRejectsEmptyTopic(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GeneratorConfig{APIKey: "k"})
	if _, err := g.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected topic error")
	}
}

func TestGenerateRejectsMalformedArticle(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "not json"}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	g := NewGenerator(GeneratorConfig{APIKey: "k", Endpoint: server.URL})
	if _, err := g.Generate(context.Background(), Request{Topic: "x"}); err == nil {
		t.Fatal("expected decode error")
	}
}
