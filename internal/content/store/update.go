package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/content"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

// Title fallback for page rows saved without one.
const untitledPage = "Untitled Page"

// UpdatePageContent applies a partial section edit. The in-memory tree is
// updated first so the panel reflects the change immediately; if the write
// to storage fails the section is rolled back to its prior value and the
// error returned.
//
// Hero edits are routed to the dedicated page columns; the full updated
// section is always folded into the row's JSON column as well, so fields
// without a column survive.
func (s *Store) UpdatePageContent(ctx context.Context, code, page, section string, fields map[string]any) error {
	code = normalizeCode(code)
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	s.mu.Lock()
	prior := s.pages[code]
	priorSection, ok := prior.Section(page, section)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("unknown section %s.%s", page, section)
	}
	merged := content.MergeSection(priorSection, fields)
	updated, err := prior.WithSection(page, section, merged)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("apply section %s.%s: %w", page, section, err)
	}
	s.pages[code] = updated
	s.saving = true
	s.mu.Unlock()

	persistErr := s.persistSection(ctx, code, page, section, fields, merged)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if persistErr != nil {
		reverted, revertErr := s.pages[code].WithSection(page, section, priorSection)
		if revertErr == nil {
			s.pages[code] = reverted
		}
		return fmt.Errorf("save %s.%s: %w", page, section, persistErr)
	}
	s.lastSaved = time.Now()
	return nil
}

func (s *Store) persistSection(ctx context.Context, code, page, section string, fields, merged map[string]any) error {
	current, err := s.db.GetPage(ctx, page, code)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	var sections map[string]any
	if len(current.Content) > 0 {
		if err := json.Unmarshal(current.Content, &sections); err != nil {
			sections = nil
		}
	}
	if sections == nil {
		sections = map[string]any{}
	}
	sections[section] = merged
	contentJSON, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("encode content column: %w", err)
	}

	rec := current
	rec.Slug = page
	rec.Language = code
	rec.Content = contentJSON
	rec.IsPublished = true
	if section == "hero" {
		if value, ok := stringField(fields, "title"); ok {
			rec.Title = value
		}
		if value, ok := stringField(fields, "subtitle"); ok {
			rec.Subtitle = value
		}
		if value, ok := stringField(fields, "description"); ok {
			rec.Description = value
		}
		if value, ok := stringField(fields, "image"); ok {
			rec.HeroImageURL = value
		}
	}
	if rec.Title == "" {
		rec.Title = untitledPage
	}
	return s.db.UpsertPage(ctx, rec)
}

func stringField(fields map[string]any, key string) (string, bool) {
	value, ok := fields[key]
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

// UpdateService persists one catalog entry and refetches the catalog.
func (s *Store) UpdateService(ctx context.Context, code, key string, svc content.ServiceData) error {
	code = normalizeCode(code)

	bullets, err := json.Marshal(svc.Bullets)
	if err != nil {
		return fmt.Errorf("encode bullets: %w", err)
	}
	subSections, err := json.Marshal(svc.SubSections)
	if err != nil {
		return fmt.Errorf("encode sub-sections: %w", err)
	}

	order := 0
	for i, existing := range content.ServiceOrder() {
		if existing == key {
			order = i
			break
		}
	}
	rec := storage.ServiceRecord{
		ServiceKey:   key,
		Language:     code,
		Title:        svc.Title,
		Description:  svc.Description,
		Bullets:      bullets,
		SubSections:  subSections,
		ImageURL:     svc.Image,
		DisplayOrder: order,
		IsActive:     true,
	}
	if err := s.db.UpsertService(ctx, rec); err != nil {
		return fmt.Errorf("save service %s/%s: %w", key, code, err)
	}

	services, err := s.fetchServices(ctx)
	if err != nil {
		return fmt.Errorf("reload services: %w", err)
	}
	s.mu.Lock()
	s.services = services
	s.lastSaved = time.Now()
	s.mu.Unlock()
	return nil
}
