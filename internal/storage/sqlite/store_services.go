package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

// ListServices returns active catalog rows across both languages, ordered
// for display.
func (s *Store) ListServices(ctx context.Context) ([]storage.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, service_key, language, title, description, bullets, sub_sections,
		        image_url, display_order, is_active, created_at, updated_at
		 FROM services
		 WHERE is_active = 1
		 ORDER BY display_order, service_key, language`)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	var services []storage.ServiceRecord
	for rows.Next() {
		var service storage.ServiceRecord
		var bullets, subSections string
		var createdAt, updatedAt int64
		if err := rows.Scan(
			&service.ID,
			&service.ServiceKey,
			&service.Language,
			&service.Title,
			&service.Description,
			&bullets,
			&subSections,
			&service.ImageURL,
			&service.DisplayOrder,
			&service.IsActive,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		service.Bullets = []byte(bullets)
		service.SubSections = []byte(subSections)
		service.CreatedAt = fromMillis(createdAt)
		service.UpdatedAt = fromMillis(updatedAt)
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return services, nil
}

// UpsertService inserts or replaces the row for (service_key, language).
func (s *Store) UpsertService(ctx context.Context, service storage.ServiceRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}

	key := strings.TrimSpace(service.ServiceKey)
	language := strings.TrimSpace(service.Language)
	if key == "" {
		return fmt.Errorf("service key is required")
	}
	if language == "" {
		return fmt.Errorf("language is required")
	}
	if strings.TrimSpace(service.Title) == "" {
		return fmt.Errorf("title is required")
	}
	bullets := service.Bullets
	if len(bullets) == 0 {
		bullets = []byte("[]")
	}
	subSections := service.SubSections
	if len(subSections) == 0 {
		subSections = []byte("[]")
	}
	now := time.Now().UTC()

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO services (
		   service_key, language, title, description, bullets, sub_sections,
		   image_url, display_order, is_active, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (service_key, language) DO UPDATE SET
		   title = excluded.title,
		   description = excluded.description,
		   bullets = excluded.bullets,
		   sub_sections = excluded.sub_sections,
		   image_url = excluded.image_url,
		   display_order = excluded.display_order,
		   is_active = excluded.is_active,
		   updated_at = excluded.updated_at`,
		key,
		language,
		strings.TrimSpace(service.Title),
		service.Description,
		string(bullets),
		string(subSections),
		service.ImageURL,
		service.DisplayOrder,
		service.IsActive,
		toMillis(now),
		toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("upsert service %s/%s: %w", key, language, err)
	}
	return nil
}
