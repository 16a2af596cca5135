// Package admin serves the CMS panel: login, dashboard, page editor, blog
// management, AI drafting, media library and the contact inbox.
package admin

import (
	"net/http"

	"github.com/avantiadvisory/avantiag.com/internal/ai"
	"github.com/avantiadvisory/avantiag.com/internal/content/store"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
	"github.com/avantiadvisory/avantiag.com/internal/web/module"
	"github.com/avantiadvisory/avantiag.com/internal/web/session"
)

// Module provides the authenticated panel routes under /admin/.
type Module struct {
	store     *store.Store
	db        storage.Store
	sessions  *session.Manager
	generator *ai.Generator
}

// New returns the admin module. The generator may be nil when no API key is
// configured.
func New(contentStore *store.Store, db storage.Store, sessions *session.Manager, generator *ai.Generator) Module {
	return Module{store: contentStore, db: db, sessions: sessions, generator: generator}
}

// ID identifies the module in composition.
func (m Module) ID() string { return "admin" }

// Mount registers the panel routes. Everything except the login screen
// requires a valid session.
func (m Module) Mount() (module.Mount, error) {
	h := handlers{store: m.store, db: m.db, sessions: m.sessions, generator: m.generator}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/login", h.loginForm)
	mux.HandleFunc("POST /admin/login", h.login)
	mux.HandleFunc("POST /admin/logout", h.logout)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /admin/{$}", h.dashboard)
	protected.HandleFunc("GET /admin/pages", h.pagesForm)
	protected.HandleFunc("POST /admin/pages", h.updatePage)
	protected.HandleFunc("GET /admin/blog", h.blog)
	protected.HandleFunc("POST /admin/blog", h.createPost)
	protected.HandleFunc("POST /admin/blog/{id}", h.updatePost)
	protected.HandleFunc("POST /admin/blog/{id}/delete", h.deletePost)
	protected.HandleFunc("GET /admin/ai", h.aiForm)
	protected.HandleFunc("POST /admin/ai", h.aiGenerate)
	protected.HandleFunc("POST /admin/ai/publish", h.aiPublish)
	protected.HandleFunc("GET /admin/media", h.media)
	protected.HandleFunc("POST /admin/media", h.uploadMedia)
	protected.HandleFunc("POST /admin/media/{id}/delete", h.deleteMedia)
	protected.HandleFunc("GET /admin/inbox", h.inbox)
	protected.HandleFunc("POST /admin/inbox/{id}/read", h.markRead)
	protected.HandleFunc("POST /admin/inbox/{id}/delete", h.deleteMessage)
	mux.Handle("/admin/", h.requireAuth(protected))

	return module.Mount{Prefix: "/admin/", Handler: mux}, nil
}
