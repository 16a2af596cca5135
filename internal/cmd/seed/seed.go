// Package seed populates a fresh database with the default catalog, demo
// articles and the first admin account.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avantiadvisory/avantiag.com/internal/content"
	entrypoint "github.com/avantiadvisory/avantiag.com/internal/platform/cmd"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
	"github.com/avantiadvisory/avantiag.com/internal/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath        string `env:"AVANTI_DB_PATH" envDefault:"data/content.db"`
	AdminEmail    string `env:"AVANTI_ADMIN_EMAIL"`
	AdminPassword string `env:"AVANTI_ADMIN_PASSWORD"`
	SkipDemoData  bool   `env:"AVANTI_SKIP_DEMO_DATA" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The SQLite database path")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "The first admin account email")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "The first admin account password")
	fs.BoolVar(&cfg.SkipDemoData, "skip-demo", cfg.SkipDemoData, "Skip demo articles")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the seed command against the configured database.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	return Apply(ctx, db, cfg, out)
}

// Apply seeds the catalog, demo posts and admin account into db.
func Apply(ctx context.Context, db storage.Store, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if err := seedServices(ctx, db); err != nil {
		return err
	}
	fmt.Fprintln(out, "service catalog seeded")

	if !cfg.SkipDemoData {
		created, err := seedPosts(ctx, db)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d demo articles seeded\n", created)
	}

	if cfg.AdminEmail != "" {
		if err := seedAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return err
		}
		fmt.Fprintf(out, "admin account %s ready\n", cfg.AdminEmail)
	}
	return nil
}

func seedServices(ctx context.Context, db storage.Store) error {
	order := content.ServiceOrder()
	for _, code := range []string{"es", "en"} {
		catalog := content.DefaultServices(code)
		for position, key := range order {
			svc, ok := catalog[key]
			if !ok {
				continue
			}
			bullets, err := json.Marshal(svc.Bullets)
			if err != nil {
				return fmt.Errorf("encode bullets for %s: %w", key, err)
			}
			subSections, err := json.Marshal(svc.SubSections)
			if err != nil {
				return fmt.Errorf("encode sub sections for %s: %w", key, err)
			}
			record := storage.ServiceRecord{
				ServiceKey:   key,
				Language:     code,
				Title:        svc.Title,
				Description:  svc.Description,
				Bullets:      bullets,
				SubSections:  subSections,
				ImageURL:     svc.Image,
				DisplayOrder: position,
				IsActive:     true,
			}
			if err := db.UpsertService(ctx, record); err != nil {
				return fmt.Errorf("seed service %s/%s: %w", key, code, err)
			}
		}
	}
	return nil
}

func seedPosts(ctx context.Context, db storage.Store) (int, error) {
	var created int
	for _, code := range []string{"es", "en"} {
		for _, post := range content.DefaultPosts(code) {
			record := storage.PostRecord{
				Slug:        content.Slugify(post.Title),
				Language:    code,
				Title:       post.Title,
				Excerpt:     post.Excerpt,
				Content:     post.Content,
				Category:    post.Category,
				Author:      post.Author,
				ImageURL:    post.Image,
				IsPublished: true,
				PublishedAt: time.Now(),
			}
			if _, err := db.CreatePost(ctx, record); err != nil {
				if errors.Is(err, storage.ErrAlreadyExists) {
					continue
				}
				return created, fmt.Errorf("seed post %q: %w", post.Title, err)
			}
			created++
		}
	}
	return created, nil
}

func seedAdmin(ctx context.Context, db storage.Store, email, password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("admin password is required when an admin email is set")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	err = db.CreateAdmin(ctx, storage.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil
	}
	return err
}
