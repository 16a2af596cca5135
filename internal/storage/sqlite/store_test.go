package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpenInMemory(t *testing.T) {
	t.Parallel()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	if _, err := store.CreatePost(ctx, storage.PostRecord{
		Slug: "hola", Language: "es", Title: "Hola", IsPublished: true,
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}
	posts, err := store.ListPosts(ctx)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("posts = %+v", posts)
	}
}

func TestUpsertPageInsertsAndUpdates(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	page := storage.PageRecord{
		Slug:        "home",
		Language:    "es",
		Title:       "Avanti Advisory Group",
		Subtitle:    "Impulsando su Desarrollo",
		Content:     []byte(`{"hero":{"images":["a.png"]}}`),
		IsPublished: true,
	}
	if err := store.UpsertPage(ctx, page); err != nil {
		t.Fatalf("insert page: %v", err)
	}

	page.Title = "Avanti"
	if err := store.UpsertPage(ctx, page); err != nil {
		t.Fatalf("update page: %v", err)
	}

	got, err := store.GetPage(ctx, "home", "es")
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if got.Title != "Avanti" {
		t.Fatalf("title = %q, want updated value", got.Title)
	}
	if string(got.Content) != `{"hero":{"images":["a.png"]}}` {
		t.Fatalf("unexpected content %s", got.Content)
	}

	pages, err := store.ListPages(ctx)
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page row, got %d", len(pages))
	}
}

func TestGetPageNotFound(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)

	_, err := store.GetPage(context.Background(), "home", "en")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPageRowsSeparatePerLanguage(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	for _, language := range []string{"es", "en"} {
		page := storage.PageRecord{Slug: "about", Language: language, Title: "About " + language, IsPublished: true}
		if err := store.UpsertPage(ctx, page); err != nil {
			t.Fatalf("insert %s: %v", language, err)
		}
	}
	pages, err := store.ListPages(ctx)
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(pages))
	}
}

func TestUpsertServiceRoundTrip(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	service := storage.ServiceRecord{
		ServiceKey:  "contabilidad",
		Language:    "es",
		Title:       "Contabilidad y Bookkeeping",
		Description: "Servicios de contabilidad externalizada.",
		Bullets:     []byte(`["Registros contables mensuales"]`),
		IsActive:    true,
	}
	if err := store.UpsertService(ctx, service); err != nil {
		t.Fatalf("insert service: %v", err)
	}
	service.Title = "Contabilidad"
	if err := store.UpsertService(ctx, service); err != nil {
		t.Fatalf("update service: %v", err)
	}

	services, err := store.ListServices(ctx)
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(services) != 1 || services[0].Title != "Contabilidad" {
		t.Fatalf("unexpected services %+v", services)
	}
}

func TestListServicesSkipsInactive(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	active := storage.ServiceRecord{ServiceKey: "a", Language: "es", Title: "A", IsActive: true}
	inactive := storage.ServiceRecord{ServiceKey: "b", Language: "es", Title: "B", IsActive: false}
	if err := store.UpsertService(ctx, active); err != nil {
		t.Fatalf("insert active: %v", err)
	}
	if err := store.UpsertService(ctx, inactive); err != nil {
		t.Fatalf("insert inactive: %v", err)
	}

	services, err := store.ListServices(ctx)
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(services) != 1 || services[0].ServiceKey != "a" {
		t.Fatalf("unexpected services %+v", services)
	}
}

func TestPostLifecycle(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	older := storage.PostRecord{
		Slug:        "older",
		Language:    "es",
		Title:       "Older",
		IsPublished: true,
		PublishedAt: time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC),
	}
	newer := storage.PostRecord{
		Slug:        "newer",
		Language:    "es",
		Title:       "Newer",
		IsPublished: true,
		PublishedAt: time.Date(2023, time.October, 12, 0, 0, 0, 0, time.UTC),
	}
	if _, err := store.CreatePost(ctx, older); err != nil {
		t.Fatalf("create older: %v", err)
	}
	newerID, err := store.CreatePost(ctx, newer)
	if err != nil {
		t.Fatalf("create newer: %v", err)
	}

	posts, err := store.ListPosts(ctx)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 || posts[0].Slug != "newer" {
		t.Fatalf("expected newest first, got %+v", posts)
	}

	posts[0].Title = "Newer v2"
	if err := store.UpdatePost(ctx, posts[0]); err != nil {
		t.Fatalf("update post: %v", err)
	}
	if err := store.DeletePost(ctx, newerID); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	if err := store.DeletePost(ctx, newerID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCreatePostRejectsDuplicateSlug(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	post := storage.PostRecord{Slug: "dup", Language: "es", Title: "Dup", IsPublished: true}
	if _, err := store.CreatePost(ctx, post); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := store.CreatePost(ctx, post); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	post.Language = "en"
	if _, err := store.CreatePost(ctx, post); err != nil {
		t.Fatalf("same slug other language: %v", err)
	}
}

func TestUpdatePostScopedByLanguage(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.CreatePost(ctx, storage.PostRecord{
		Slug: "guia", Language: "es", Title: "Guía", IsPublished: true,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	err = store.UpdatePost(ctx, storage.PostRecord{ID: id, Language: "en", Title: "Guide"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong language, got %v", err)
	}
	if err := store.UpdatePost(ctx, storage.PostRecord{ID: id, Language: "es", Title: "Guía v2"}); err != nil {
		t.Fatalf("update post: %v", err)
	}
	if err := store.UpdatePost(ctx, storage.PostRecord{ID: id, Title: "Sin idioma"}); err == nil {
		t.Fatal("expected error for missing language")
	}

	posts, err := store.ListPosts(ctx)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Guía v2" {
		t.Fatalf("posts = %+v", posts)
	}
}

func TestListPostSlugsFiltersByLanguage(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	for _, post := range []storage.PostRecord{
		{Slug: "uno", Language: "es", Title: "Uno"},
		{Slug: "one", Language: "en", Title: "One"},
	} {
		if _, err := store.CreatePost(ctx, post); err != nil {
			t.Fatalf("create %s: %v", post.Slug, err)
		}
	}
	slugs, err := store.ListPostSlugs(ctx, "es")
	if err != nil {
		t.Fatalf("list slugs: %v", err)
	}
	if len(slugs) != 1 || slugs[0] != "uno" {
		t.Fatalf("unexpected slugs %v", slugs)
	}
}

func TestMessageLifecycle(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.CreateMessage(ctx, storage.MessageRecord{
		Name:    "Ana",
		Email:   "ana@example.com",
		Reason:  "Consulta General",
		Message: "Hola",
	})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}

	messages, err := store.ListMessages(ctx)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 1 || messages[0].IsRead {
		t.Fatalf("unexpected messages %+v", messages)
	}

	if err := store.MarkMessageRead(ctx, id); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	messages, err = store.ListMessages(ctx)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if !messages[0].IsRead {
		t.Fatal("message still unread")
	}
	if err := store.DeleteMessage(ctx, id); err != nil {
		t.Fatalf("delete message: %v", err)
	}
}

func TestMediaLifecycle(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.CreateMedia(ctx, storage.MediaRecord{
		Name: "photo.png",
		URL:  "/uploads/abc_1.png",
	})
	if err != nil {
		t.Fatalf("create media: %v", err)
	}
	items, err := store.ListMedia(ctx)
	if err != nil {
		t.Fatalf("list media: %v", err)
	}
	if len(items) != 1 || items[0].URL != "/uploads/abc_1.png" {
		t.Fatalf("unexpected media %+v", items)
	}
	if err := store.DeleteMedia(ctx, id); err != nil {
		t.Fatalf("delete media: %v", err)
	}
	if err := store.DeleteMedia(ctx, id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminAccounts(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	admin := storage.AdminUser{Email: "Admin@AvantiAG.com", PasswordHash: "hash"}
	if err := store.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if err := store.CreateAdmin(ctx, admin); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	got, err := store.GetAdminByEmail(ctx, "admin@avantiag.com")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if got.PasswordHash != "hash" {
		t.Fatalf("unexpected admin %+v", got)
	}
	if !got.LastLoginAt.IsZero() {
		t.Fatal("new admin should have zero last login")
	}

	loginAt := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	if err := store.TouchAdminLogin(ctx, got.ID, loginAt); err != nil {
		t.Fatalf("touch login: %v", err)
	}
	got, err = store.GetAdminByEmail(ctx, "admin@avantiag.com")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if !got.LastLoginAt.Equal(loginAt.Truncate(time.Millisecond)) {
		t.Fatalf("last login = %v, want %v", got.LastLoginAt, loginAt)
	}

	if _, err := store.GetAdminByEmail(ctx, "nobody@avantiag.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
