package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

// CreateMedia inserts one media library entry and returns its id.
func (s *Store) CreateMedia(ctx context.Context, media storage.MediaRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.ready(); err != nil {
		return 0, err
	}

	name := strings.TrimSpace(media.Name)
	url := strings.TrimSpace(media.URL)
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if url == "" {
		return 0, fmt.Errorf("url is required")
	}
	createdAt := media.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO media (name, url, file_type, file_size, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		name,
		url,
		strings.TrimSpace(media.FileType),
		media.FileSize,
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert media: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("media insert id: %w", err)
	}
	return id, nil
}

// ListMedia returns all entries, newest first.
func (s *Store) ListMedia(ctx context.Context) ([]storage.MediaRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, url, file_type, file_size, created_at
		 FROM media
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query media: %w", err)
	}
	defer rows.Close()

	var items []storage.MediaRecord
	for rows.Next() {
		var item storage.MediaRecord
		var createdAt int64
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.URL,
			&item.FileType,
			&item.FileSize,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		item.CreatedAt = fromMillis(createdAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media: %w", err)
	}
	return items, nil
}

// DeleteMedia removes one entry.
func (s *Store) DeleteMedia(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "media", id)
}
