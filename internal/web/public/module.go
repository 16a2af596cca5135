// Package public serves the visitor-facing site: home, services, resources,
// about, contact and payment pages.
package public

import (
	"net/http"

	"github.com/avantiadvisory/avantiag.com/internal/content/store"
	"github.com/avantiadvisory/avantiag.com/internal/web/module"
)

// Module provides the unauthenticated site routes.
type Module struct {
	store *store.Store
}

// New returns the public site module backed by the content store.
func New(contentStore *store.Store) Module {
	return Module{store: contentStore}
}

// ID identifies the module in composition.
func (m Module) ID() string { return "public" }

// Mount registers the public routes at the site root.
func (m Module) Mount() (module.Mount, error) {
	h := handlers{store: m.store}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.home)
	mux.HandleFunc("GET /about", h.about)
	mux.HandleFunc("GET /resources", h.resources)
	mux.HandleFunc("GET /resources/{id}", h.resourceDetail)
	mux.HandleFunc("GET /contact", h.contact)
	mux.HandleFunc("POST /contact", h.submitContact)
	mux.HandleFunc("GET /payment", h.payment)
	mux.HandleFunc("GET /services/{id}", h.service)
	mux.HandleFunc("/", h.fallback)
	return module.Mount{Prefix: "/", Handler: mux}, nil
}
