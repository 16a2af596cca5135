// Package assets stores uploaded files on disk and serves them under a
// public URL prefix.
package assets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// URLPrefix is where the server mounts the upload directory.
const URLPrefix = "/uploads/"

// Bucket writes uploads to a directory and addresses them by public URL.
type Bucket struct {
	dir string

	// BaseURL, when set, is prepended to verification requests so Verify
	// can do a real HTTP check against the running server. Without it,
	// Verify stats the file on disk.
	BaseURL string

	// HTTPClient is used for URL verification. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
}

// NewBucket ensures the upload directory exists and returns a bucket over
// it.
func NewBucket(dir string) (*Bucket, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Bucket{dir: dir}, nil
}

// Dir returns the backing directory.
func (b *Bucket) Dir() string {
	return b.dir
}

// Save writes one file and returns its public URL. The name must be a
// bare filename; path separators are rejected.
func (b *Bucket) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != path.Base(name) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid upload name %q", name)
	}
	target := filepath.Join(b.dir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload %s: %w", name, err)
	}
	return URLPrefix + name, nil
}

// Verify checks that a previously saved URL is reachable. With a BaseURL
// it issues a HEAD request; otherwise it checks the file exists on disk.
func (b *Bucket) Verify(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, URLPrefix) {
		return fmt.Errorf("url %q outside upload prefix", url)
	}
	if b.BaseURL != "" {
		client := b.HTTPClient
		if client == nil {
			client = http.DefaultClient
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, strings.TrimSuffix(b.BaseURL, "/")+url, nil)
		if err != nil {
			return fmt.Errorf("build verify request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("verify %s: %w", url, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("verify %s: status %d", url, resp.StatusCode)
		}
		return nil
	}
	name := strings.TrimPrefix(url, URLPrefix)
	if _, err := os.Stat(filepath.Join(b.dir, name)); err != nil {
		return fmt.Errorf("verify %s: %w", url, err)
	}
	return nil
}

// Handler serves the upload directory.
func (b *Bucket) Handler() http.Handler {
	return http.StripPrefix(URLPrefix, http.FileServer(http.Dir(b.dir)))
}
