package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/content"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

// AddPost creates an article in one language and returns it with its
// assigned id. The slug derives from the title; when taken, a numeric
// suffix (-2, -3, ...) disambiguates. The article body is sanitized.
func (s *Store) AddPost(ctx context.Context, code string, post content.BlogPost) (content.BlogPost, error) {
	code = normalizeCode(code)
	if post.Title == "" {
		return content.BlogPost{}, fmt.Errorf("title is required")
	}

	slug, err := s.availableSlug(ctx, code, post.Title)
	if err != nil {
		return content.BlogPost{}, err
	}
	author := post.Author
	if author == "" {
		author = defaultAuthor
	}

	rec := storage.PostRecord{
		Slug:        slug,
		Language:    code,
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		Content:     content.SanitizeHTML(post.Content),
		Category:    post.Category,
		Author:      author,
		ImageURL:    post.Image,
		IsPublished: true,
		PublishedAt: time.Now().UTC(),
	}
	id, err := s.db.CreatePost(ctx, rec)
	if err != nil {
		return content.BlogPost{}, fmt.Errorf("create post: %w", err)
	}
	if err := s.reloadPosts(ctx); err != nil {
		return content.BlogPost{}, err
	}

	created, ok := s.Post(code, id)
	if !ok {
		return content.BlogPost{}, fmt.Errorf("created post %d missing after reload", id)
	}
	return created, nil
}

// availableSlug slugifies a title and appends the first free numeric
// suffix when the base slug is taken in this language.
func (s *Store) availableSlug(ctx context.Context, code, title string) (string, error) {
	base := content.Slugify(title)
	if base == "" {
		base = "post"
	}
	existing, err := s.db.ListPostSlugs(ctx, code)
	if err != nil {
		return "", fmt.Errorf("list post slugs: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, slug := range existing {
		taken[slug] = true
	}
	if !taken[base] {
		return base, nil
	}
	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !taken[candidate] {
			return candidate, nil
		}
	}
}

// UpdatePost rewrites an existing article and reloads the article lists.
func (s *Store) UpdatePost(ctx context.Context, code string, post content.BlogPost) error {
	code = normalizeCode(code)
	if post.ID == 0 {
		return fmt.Errorf("post id is required")
	}
	author := post.Author
	if author == "" {
		author = defaultAuthor
	}
	rec := storage.PostRecord{
		ID:          post.ID,
		Language:    code,
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		Content:     content.SanitizeHTML(post.Content),
		Category:    post.Category,
		Author:      author,
		ImageURL:    post.Image,
		IsPublished: true,
	}
	if err := s.db.UpdatePost(ctx, rec); err != nil {
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	return s.reloadPosts(ctx)
}

// DeletePost removes an article and reloads the article lists.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	if err := s.db.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return s.reloadPosts(ctx)
}

func (s *Store) reloadPosts(ctx context.Context) error {
	posts, err := s.fetchPosts(ctx)
	if err != nil {
		return fmt.Errorf("reload posts: %w", err)
	}
	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
	return nil
}
