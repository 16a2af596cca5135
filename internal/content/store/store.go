// Package store keeps an in-memory snapshot of all site content per
// language, backed by persistent storage. Reads are served from the
// snapshot; writes go to storage first and refresh the affected slice.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/content"
	"github.com/avantiadvisory/avantiag.com/internal/platform/i18n/catalog"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
	"golang.org/x/sync/singleflight"
)

// Fallback author for articles stored without one.
const defaultAuthor = "Equipo Avanti"

var langCodes = []string{"es", "en"}

// Bucket stores uploaded files and serves them at a public URL.
type Bucket interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Verify(ctx context.Context, url string) error
}

// Store is the shared content state used by the public site and the admin
// panel. All methods are safe for concurrent use.
type Store struct {
	db     storage.Store
	bucket Bucket
	bundle *catalog.Bundle

	group singleflight.Group

	mu         sync.RWMutex
	generation int64
	applied    int64
	pages      map[string]content.PageContent
	services   map[string]map[string]content.ServiceData
	posts      map[string][]content.BlogPost
	media      []content.MediaItem
	messages   []content.Message
	lastSaved  time.Time
	saving     bool
}

// New builds a store serving built-in defaults until the first Refresh.
// The bucket may be nil when uploads are disabled.
func New(db storage.Store, bucket Bucket) *Store {
	return &Store{
		db:     db,
		bucket: bucket,
		bundle: catalog.Default(),
		pages: map[string]content.PageContent{
			"es": content.DefaultPages("es"),
			"en": content.DefaultPages("en"),
		},
		services: map[string]map[string]content.ServiceData{
			"es": content.DefaultServices("es"),
			"en": content.DefaultServices("en"),
		},
		posts: map[string][]content.BlogPost{
			"es": content.DefaultPosts("es"),
			"en": content.DefaultPosts("en"),
		},
	}
}

func normalizeCode(code string) string {
	if code == "en" {
		return "en"
	}
	return "es"
}

// Pages returns the assembled page tree for one language.
func (s *Store) Pages(code string) content.PageContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pages[normalizeCode(code)]
}

// Services returns the catalog for one language, keyed by service id.
func (s *Store) Services(code string) map[string]content.ServiceData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services[normalizeCode(code)]
}

// Service returns one catalog entry for a language.
func (s *Store) Service(code, key string) (content.ServiceData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[normalizeCode(code)][key]
	return svc, ok
}

// Posts returns the articles for one language, newest first.
func (s *Store) Posts(code string) []content.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts[normalizeCode(code)]
}

// Post returns one article by id.
func (s *Store) Post(code string, id int64) (content.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, post := range s.posts[normalizeCode(code)] {
		if post.ID == id {
			return post, true
		}
	}
	return content.BlogPost{}, false
}

// Media returns the media library, newest first.
func (s *Store) Media() []content.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.media
}

// Messages returns the inbox, newest first.
func (s *Store) Messages() []content.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages
}

// UnreadCount returns how many inbox messages are unread.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, message := range s.messages {
		if !message.Read {
			count++
		}
	}
	return count
}

// LastSaved returns when a page edit last persisted, zero if never.
func (s *Store) LastSaved() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSaved
}

// IsSaving reports whether a page edit is currently persisting.
func (s *Store) IsSaving() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saving
}

// Translate resolves a fixed interface string for one language. Unknown
// keys come back verbatim so missing entries stay visible.
func (s *Store) Translate(code, key string) string {
	if value, ok := s.bundle.Message(normalizeCode(code), key); ok {
		return value
	}
	return key
}

// Refresh reloads every content slice from storage. The five fetches run
// concurrently and fail independently; a slice whose fetch fails keeps its
// previous value. Concurrent callers share one in-flight refresh, and a
// refresh that lost the race to a newer one discards its result.
func (s *Store) Refresh(ctx context.Context) error {
	_, err, _ := s.group.Do("refresh", func() (any, error) {
		return nil, s.refresh(ctx)
	})
	return err
}

type snapshot struct {
	pages    map[string]content.PageContent
	services map[string]map[string]content.ServiceData
	posts    map[string][]content.BlogPost
	media    []content.MediaItem
	messages []content.Message

	pagesErr    error
	servicesErr error
	postsErr    error
	mediaErr    error
	messagesErr error
}

func (s *Store) refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var snap snapshot
	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		snap.pages, snap.pagesErr = s.fetchPages(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.services, snap.servicesErr = s.fetchServices(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.posts, snap.postsErr = s.fetchPosts(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.media, snap.mediaErr = s.fetchMedia(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.messages, snap.messagesErr = s.fetchMessages(ctx)
	}()
	wg.Wait()

	for _, err := range []error{snap.pagesErr, snap.servicesErr, snap.postsErr, snap.mediaErr, snap.messagesErr} {
		if err != nil {
			log.Printf("content refresh: %v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.applied {
		return nil
	}
	s.applied = gen
	if snap.pagesErr == nil {
		s.pages = snap.pages
	}
	if snap.servicesErr == nil {
		s.services = snap.services
	}
	if snap.postsErr == nil {
		s.posts = snap.posts
	}
	if snap.mediaErr == nil {
		s.media = snap.media
	}
	if snap.messagesErr == nil {
		s.messages = snap.messages
	}
	return errors.Join(snap.pagesErr, snap.servicesErr, snap.postsErr, snap.mediaErr, snap.messagesErr)
}

func (s *Store) fetchPages(ctx context.Context) (map[string]content.PageContent, error) {
	records, err := s.db.ListPages(ctx)
	if err != nil {
		return nil, err
	}
	pages := map[string]content.PageContent{
		"es": content.DefaultPages("es"),
		"en": content.DefaultPages("en"),
	}
	for _, rec := range records {
		code := rec.Language
		if code != "es" && code != "en" {
			continue
		}
		assembled, err := assemblePage(pages[code], rec)
		if err != nil {
			log.Printf("assemble page %s/%s: %v", rec.Slug, code, err)
			continue
		}
		pages[code] = assembled
	}
	return pages, nil
}

// assemblePage overlays one storage row onto the tree for its language.
// Hero fields come from the dedicated columns; every other section in the
// JSON column merges field by field over the defaults.
func assemblePage(pc content.PageContent, rec storage.PageRecord) (content.PageContent, error) {
	var sections map[string]map[string]any
	if len(rec.Content) > 0 {
		if err := json.Unmarshal(rec.Content, &sections); err != nil {
			log.Printf("page %s/%s content column: %v", rec.Slug, rec.Language, err)
			sections = nil
		}
	}

	hero, ok := pc.Section(rec.Slug, "hero")
	if !ok {
		// Not an editable page slug; ignore the row.
		return pc, nil
	}
	hero = content.MergeSection(hero, map[string]any{
		"title":    rec.Title,
		"subtitle": rec.Subtitle,
		"image":    rec.HeroImageURL,
	})
	if rec.Slug == "home" {
		hero["description"] = rec.Description
		if images, ok := sections["hero"]["images"]; ok {
			hero["images"] = images
		}
	}
	pc, err := pc.WithSection(rec.Slug, "hero", hero)
	if err != nil {
		return pc, err
	}

	for name, fields := range sections {
		if name == "hero" {
			continue
		}
		base, ok := pc.Section(rec.Slug, name)
		if !ok {
			continue
		}
		updated, err := pc.WithSection(rec.Slug, name, content.MergeSection(base, fields))
		if err != nil {
			log.Printf("page %s/%s section %s: %v", rec.Slug, rec.Language, name, err)
			continue
		}
		pc = updated
	}
	return pc, nil
}

func (s *Store) fetchServices(ctx context.Context) (map[string]map[string]content.ServiceData, error) {
	records, err := s.db.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	services := map[string]map[string]content.ServiceData{
		"es": content.DefaultServices("es"),
		"en": content.DefaultServices("en"),
	}
	for _, rec := range records {
		code := rec.Language
		if code != "es" && code != "en" {
			continue
		}
		var bullets content.StringList
		if err := json.Unmarshal(rec.Bullets, &bullets); err != nil {
			log.Printf("service %s/%s bullets: %v", rec.ServiceKey, code, err)
		}
		var subSections content.SubSectionList
		if err := json.Unmarshal(rec.SubSections, &subSections); err != nil {
			log.Printf("service %s/%s sub-sections: %v", rec.ServiceKey, code, err)
		}
		services[code][rec.ServiceKey] = content.ServiceData{
			ID:          rec.ServiceKey,
			Title:       rec.Title,
			Description: rec.Description,
			Bullets:     bullets,
			Image:       rec.ImageURL,
			SubSections: subSections,
		}
	}
	return services, nil
}

func (s *Store) fetchPosts(ctx context.Context) (map[string][]content.BlogPost, error) {
	records, err := s.db.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	posts := map[string][]content.BlogPost{"es": {}, "en": {}}
	for _, rec := range records {
		code := rec.Language
		if code != "es" && code != "en" {
			continue
		}
		author := rec.Author
		if author == "" {
			author = defaultAuthor
		}
		posts[code] = append(posts[code], content.BlogPost{
			ID:       rec.ID,
			Title:    rec.Title,
			Excerpt:  rec.Excerpt,
			Content:  rec.Content,
			Date:     content.DisplayDate(rec.PublishedAt),
			Image:    rec.ImageURL,
			Author:   author,
			Category: rec.Category,
		})
	}
	return posts, nil
}

func (s *Store) fetchMedia(ctx context.Context) ([]content.MediaItem, error) {
	records, err := s.db.ListMedia(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]content.MediaItem, 0, len(records))
	for _, rec := range records {
		items = append(items, content.MediaItem{
			ID:   rec.ID,
			URL:  rec.URL,
			Name: rec.Name,
			Date: content.DisplayDate(rec.CreatedAt),
		})
	}
	return items, nil
}

func (s *Store) fetchMessages(ctx context.Context) ([]content.Message, error) {
	records, err := s.db.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	messages := make([]content.Message, 0, len(records))
	for _, rec := range records {
		messages = append(messages, content.Message{
			ID:      rec.ID,
			Name:    rec.Name,
			Email:   rec.Email,
			Phone:   rec.Phone,
			Reason:  rec.Reason,
			Message: rec.Message,
			Date:    content.DisplayDate(rec.CreatedAt),
			Read:    rec.IsRead,
		})
	}
	return messages, nil
}
