// Package web composes the site modules into one HTTP surface and hosts
// its lifecycle.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/ai"
	"github.com/avantiadvisory/avantiag.com/internal/assets"
	"github.com/avantiadvisory/avantiag.com/internal/content/store"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
	"github.com/avantiadvisory/avantiag.com/internal/web/admin"
	"github.com/avantiadvisory/avantiag.com/internal/web/httpx"
	"github.com/avantiadvisory/avantiag.com/internal/web/module"
	"github.com/avantiadvisory/avantiag.com/internal/web/observability"
	"github.com/avantiadvisory/avantiag.com/internal/web/public"
	"github.com/avantiadvisory/avantiag.com/internal/web/session"
	"github.com/avantiadvisory/avantiag.com/internal/web/static"
)

// Config defines startup inputs for the web server.
type Config struct {
	HTTPAddr     string
	ContentStore *store.Store
	DB           storage.Store
	Sessions     *session.Manager
	Generator    *ai.Generator
	Bucket       *assets.Bucket
}

// Server hosts the HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default modules.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.ContentStore == nil {
		return nil, errors.New("content store is required")
	}
	if cfg.DB == nil {
		return nil, errors.New("storage is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session manager is required")
	}

	modules := []module.Module{
		admin.New(cfg.ContentStore, cfg.DB, cfg.Sessions, cfg.Generator),
		public.New(cfg.ContentStore),
	}
	rootMux := http.NewServeMux()
	rootMux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	if cfg.Bucket != nil {
		rootMux.Handle(assets.URLPrefix, cfg.Bucket.Handler())
	}
	for _, m := range modules {
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", m.ID(), err)
		}
		rootMux.Handle(mount.Prefix, mount.Handler)
	}
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
