package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

const pageColumns = `id, slug, language, title, subtitle, description, hero_image_url,
	content, meta_title, meta_description, is_published, created_at, updated_at`

// ListPages returns every page row across both languages.
func (s *Store) ListPages(ctx context.Context) ([]storage.PageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+pageColumns+` FROM pages ORDER BY slug, language`)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	defer rows.Close()

	var pages []storage.PageRecord
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}
	return pages, nil
}

// GetPage returns one page row by slug and language.
func (s *Store) GetPage(ctx context.Context, slug, language string) (storage.PageRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.PageRecord{}, err
	}
	if err := s.ready(); err != nil {
		return storage.PageRecord{}, err
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE slug = ? AND language = ?`,
		strings.TrimSpace(slug), strings.TrimSpace(language))
	page, err := scanPage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.PageRecord{}, storage.ErrNotFound
		}
		return storage.PageRecord{}, err
	}
	return page, nil
}

// UpsertPage inserts or replaces the row for (slug, language). Created
// timestamps survive an update.
func (s *Store) UpsertPage(ctx context.Context, page storage.PageRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}

	slug := strings.TrimSpace(page.Slug)
	language := strings.TrimSpace(page.Language)
	if slug == "" {
		return fmt.Errorf("slug is required")
	}
	if language == "" {
		return fmt.Errorf("language is required")
	}
	title := strings.TrimSpace(page.Title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	contentJSON := page.Content
	if len(contentJSON) == 0 {
		contentJSON = []byte("{}")
	}
	now := time.Now().UTC()

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO pages (
		   slug, language, title, subtitle, description, hero_image_url,
		   content, meta_title, meta_description, is_published, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (slug, language) DO UPDATE SET
		   title = excluded.title,
		   subtitle = excluded.subtitle,
		   description = excluded.description,
		   hero_image_url = excluded.hero_image_url,
		   content = excluded.content,
		   meta_title = excluded.meta_title,
		   meta_description = excluded.meta_description,
		   is_published = excluded.is_published,
		   updated_at = excluded.updated_at`,
		slug,
		language,
		title,
		page.Subtitle,
		page.Description,
		page.HeroImageURL,
		string(contentJSON),
		page.MetaTitle,
		page.MetaDescription,
		page.IsPublished,
		toMillis(now),
		toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("upsert page %s/%s: %w", slug, language, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (storage.PageRecord, error) {
	var page storage.PageRecord
	var content string
	var createdAt, updatedAt int64
	err := row.Scan(
		&page.ID,
		&page.Slug,
		&page.Language,
		&page.Title,
		&page.Subtitle,
		&page.Description,
		&page.HeroImageURL,
		&content,
		&page.MetaTitle,
		&page.MetaDescription,
		&page.IsPublished,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.PageRecord{}, err
		}
		return storage.PageRecord{}, fmt.Errorf("scan page: %w", err)
	}
	page.Content = []byte(content)
	page.CreatedAt = fromMillis(createdAt)
	page.UpdatedAt = fromMillis(updatedAt)
	return page, nil
}
