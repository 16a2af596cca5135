package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

// AddMedia registers an externally hosted file in the media library and
// reloads it.
func (s *Store) AddMedia(ctx context.Context, name, url string) error {
	_, err := s.db.CreateMedia(ctx, storage.MediaRecord{Name: name, URL: url})
	if err != nil {
		return fmt.Errorf("save media %s: %w", name, err)
	}
	return s.reloadMedia(ctx)
}

// DeleteMedia removes a library entry and reloads the library. The backing
// file is left in place; other content may still reference its URL.
func (s *Store) DeleteMedia(ctx context.Context, id int64) error {
	if err := s.db.DeleteMedia(ctx, id); err != nil {
		return fmt.Errorf("delete media %d: %w", id, err)
	}
	return s.reloadMedia(ctx)
}

// UploadImage stores a file in the bucket under a randomized name that
// keeps the original extension, registers it in the media library, and
// returns its public URL. The post-upload verification is advisory: a
// failure is logged, not returned.
func (s *Store) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if s.bucket == nil {
		return "", fmt.Errorf("uploads are not configured")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty upload")
	}

	name := uploadName(filename)
	url, err := s.bucket.Save(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if err := s.bucket.Verify(ctx, url); err != nil {
		log.Printf("verify upload %s: %v", url, err)
	}
	if err := s.AddMedia(ctx, filename, url); err != nil {
		return "", err
	}
	return url, nil
}

func uploadName(original string) string {
	ext := strings.ToLower(path.Ext(original))
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf) + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + ext
}

func (s *Store) reloadMedia(ctx context.Context) error {
	media, err := s.fetchMedia(ctx)
	if err != nil {
		return fmt.Errorf("reload media: %w", err)
	}
	s.mu.Lock()
	s.media = media
	s.mu.Unlock()
	return nil
}
