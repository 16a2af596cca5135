// Package server parses web server flags and launches the site.
package server

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/ai"
	"github.com/avantiadvisory/avantiag.com/internal/assets"
	"github.com/avantiadvisory/avantiag.com/internal/content/store"
	entrypoint "github.com/avantiadvisory/avantiag.com/internal/platform/cmd"
	"github.com/avantiadvisory/avantiag.com/internal/storage/sqlite"
	"github.com/avantiadvisory/avantiag.com/internal/web"
	"github.com/avantiadvisory/avantiag.com/internal/web/session"
)

// Config holds web server command configuration.
type Config struct {
	HTTPAddr      string        `env:"AVANTI_HTTP_ADDR" envDefault:":8080"`
	DBPath        string        `env:"AVANTI_DB_PATH" envDefault:"data/content.db"`
	UploadDir     string        `env:"AVANTI_UPLOAD_DIR" envDefault:"data/uploads"`
	AssetBaseURL  string        `env:"AVANTI_ASSET_BASE_URL"`
	SessionSecret string        `env:"AVANTI_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"AVANTI_SESSION_TTL" envDefault:"12h"`
	SecureCookies bool          `env:"AVANTI_SECURE_COOKIES" envDefault:"false"`
	GeminiAPIKey  string        `env:"AVANTI_GEMINI_API_KEY"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "The HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The SQLite database path")
	fs.StringVar(&cfg.UploadDir, "uploads", cfg.UploadDir, "The media upload directory")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		dbPath := databasePath(cfg.DBPath)
		if dir := filepath.Dir(dbPath); dbPath != ":memory:" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create database directory: %w", err)
			}
		}
		db, err := sqlite.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		bucket, err := assets.NewBucket(cfg.UploadDir)
		if err != nil {
			return fmt.Errorf("open upload bucket: %w", err)
		}
		bucket.BaseURL = cfg.AssetBaseURL

		secret, err := sessionSecret(cfg.SessionSecret)
		if err != nil {
			return err
		}
		sessions, err := session.NewManager(secret, cfg.SessionTTL, cfg.SecureCookies)
		if err != nil {
			return err
		}

		var generator *ai.Generator
		if cfg.GeminiAPIKey != "" {
			generator = ai.NewGenerator(ai.GeneratorConfig{APIKey: cfg.GeminiAPIKey})
		}

		contentStore := store.New(db, bucket)
		if err := contentStore.Refresh(ctx); err != nil {
			log.Printf("initial content refresh: %v", err)
		}

		server, err := web.NewServer(web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			ContentStore: contentStore,
			DB:           db,
			Sessions:     sessions,
			Generator:    generator,
			Bucket:       bucket,
		})
		if err != nil {
			return err
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}

// databasePath maps a blank configured path to the transient in-memory
// database. Content edits are lost on exit in that mode.
func databasePath(path string) string {
	if strings.TrimSpace(path) != "" {
		return path
	}
	log.Printf("configuration error: AVANTI_DB_PATH is empty, serving from in-memory storage")
	return ":memory:"
}

// sessionSecret returns the configured signing key, or an ephemeral random
// one when unset. Sessions signed with an ephemeral key do not survive a
// restart.
func sessionSecret(secret string) ([]byte, error) {
	if secret != "" {
		return []byte(secret), nil
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	log.Printf("AVANTI_SESSION_SECRET is not set, admin sessions will not survive a restart")
	return key, nil
}
