// Package ai drafts blog articles through the Gemini HTTP API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/content"
)

// ErrUnavailable is returned when no API key is configured.
var ErrUnavailable = errors.New("ai: generator is not configured")

const (
	defaultModel    = "gemini-2.5-flash"
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

	draftAuthor = "IA Assistant (Revisado)"
	draftImage  = "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?auto=format&fit=crop&q=80"
)

const systemInstruction = `Actúa como un redactor experto en finanzas, contabilidad y leyes fiscales internacionales para el blog corporativo de 'Avanti Advisory Group'.
Genera un artículo de blog estructurado en formato JSON.

Estructura JSON requerida:
{
    "title": "Un título optimizado para SEO y atractivo",
    "subtitle": "Un subtítulo breve",
    "category": "Una categoría relevante (ej. Fiscalidad, Negocios, Finanzas)",
    "excerpt": "Un resumen de 2-3 frases para la vista previa",
    "content": "El cuerpo del artículo en formato HTML. Usa <h3> para subtítulos, <p> para párrafos, <ul>/<li> para listas. NO uses <h1>. Hazlo de al menos 400 palabras."
}`

// GeneratorConfig configures the Gemini endpoint and HTTP behavior.
type GeneratorConfig struct {
	APIKey     string
	Model      string
	Endpoint   string
	HTTPClient *http.Client
}

// Generator drafts articles from a topic prompt.
type Generator struct {
	cfg GeneratorConfig
}

// NewGenerator builds a generator. An empty API key is allowed; Generate
// then returns ErrUnavailable so the panel can show the feature as off.
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultModel
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = defaultEndpoint
	}
	return &Generator{cfg: cfg}
}

// Available reports whether an API key is configured.
func (g *Generator) Available() bool {
	return strings.TrimSpace(g.cfg.APIKey) != ""
}

// Request is one article draft request.
type Request struct {
	Topic    string
	Keywords string
	Tone     string
}

// Draft is a generated article ready for review. Subtitle is advisory and
// not part of the stored article.
type Draft struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Image    string `json:"image"`
}

type generateRequest struct {
	SystemInstruction struct {
		Parts []part `json:"parts"`
	} `json:"systemInstruction"`
	Contents []struct {
		Parts []part `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"responseMimeType"`
	} `json:"generationConfig"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate drafts one Spanish article for the given topic. The draft is
// stamped with today's date, the review author, and a default image.
func (g *Generator) Generate(ctx context.Context, req Request) (Draft, error) {
	if !g.Available() {
		return Draft{}, ErrUnavailable
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return Draft{}, fmt.Errorf("topic is required")
	}

	userPrompt := fmt.Sprintf("Tema: %s\nPalabras clave obligatorias: %s\nTono: %s\nIdioma: Español",
		topic, req.Keywords, req.Tone)

	var payload generateRequest
	payload.SystemInstruction.Parts = []part{{Text: systemInstruction}}
	payload.Contents = []struct {
		Parts []part `json:"parts"`
	}{{Parts: []part{{Text: userPrompt}}}}
	payload.GenerationConfig.ResponseMimeType = "application/json"

	body, err := json.Marshal(payload)
	if err != nil {
		return Draft{}, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", strings.TrimSuffix(g.cfg.Endpoint, "/"), g.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Draft{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.cfg.APIKey)

	resp, err := g.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return Draft{}, fmt.Errorf("call generator: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Draft{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Draft{}, fmt.Errorf("generator status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Draft{}, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return Draft{}, fmt.Errorf("generator returned no candidates")
	}

	var draft Draft
	text := decoded.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return Draft{}, fmt.Errorf("decode article json: %w", err)
	}
	if strings.TrimSpace(draft.Title) == "" {
		return Draft{}, fmt.Errorf("generated article has no title")
	}

	draft.Date = content.DisplayDate(time.Now())
	draft.Author = draftAuthor
	draft.Image = draftImage
	return draft, nil
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
