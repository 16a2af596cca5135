package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

// ListPosts returns all article rows, newest first.
func (s *Store) ListPosts(ctx context.Context) ([]storage.PostRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, slug, language, title, excerpt, content, category, author,
		        image_url, is_featured, is_published, published_at, created_at, updated_at
		 FROM blog_posts
		 ORDER BY published_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []storage.PostRecord
	for rows.Next() {
		var post storage.PostRecord
		var publishedAt, createdAt, updatedAt int64
		if err := rows.Scan(
			&post.ID,
			&post.Slug,
			&post.Language,
			&post.Title,
			&post.Excerpt,
			&post.Content,
			&post.Category,
			&post.Author,
			&post.ImageURL,
			&post.IsFeatured,
			&post.IsPublished,
			&publishedAt,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		post.PublishedAt = fromMillis(publishedAt)
		post.CreatedAt = fromMillis(createdAt)
		post.UpdatedAt = fromMillis(updatedAt)
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

// ListPostSlugs returns every slug already taken in one language.
func (s *Store) ListPostSlugs(ctx context.Context, language string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT slug FROM blog_posts WHERE language = ?`, strings.TrimSpace(language))
	if err != nil {
		return nil, fmt.Errorf("query post slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan post slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post slugs: %w", err)
	}
	return slugs, nil
}

// CreatePost inserts one article row and returns its id.
func (s *Store) CreatePost(ctx context.Context, post storage.PostRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.ready(); err != nil {
		return 0, err
	}

	slug := strings.TrimSpace(post.Slug)
	language := strings.TrimSpace(post.Language)
	if slug == "" {
		return 0, fmt.Errorf("slug is required")
	}
	if language == "" {
		return 0, fmt.Errorf("language is required")
	}
	if strings.TrimSpace(post.Title) == "" {
		return 0, fmt.Errorf("title is required")
	}
	publishedAt := post.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}
	now := time.Now().UTC()

	result, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO blog_posts (
		   slug, language, title, excerpt, content, category, author,
		   image_url, is_featured, is_published, published_at, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		slug,
		language,
		strings.TrimSpace(post.Title),
		post.Excerpt,
		post.Content,
		post.Category,
		post.Author,
		post.ImageURL,
		post.IsFeatured,
		post.IsPublished,
		toMillis(publishedAt),
		toMillis(now),
		toMillis(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrAlreadyExists
		}
		return 0, fmt.Errorf("insert post %s/%s: %w", slug, language, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("post insert id: %w", err)
	}
	return id, nil
}

// UpdatePost rewrites the editable fields of one article row, matched by
// id and language.
func (s *Store) UpdatePost(ctx context.Context, post storage.PostRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if post.ID == 0 {
		return fmt.Errorf("post id is required")
	}
	language := strings.TrimSpace(post.Language)
	if language == "" {
		return fmt.Errorf("language is required")
	}

	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE blog_posts SET
		   title = ?, excerpt = ?, content = ?, category = ?, author = ?,
		   image_url = ?, is_featured = ?, is_published = ?, updated_at = ?
		 WHERE id = ? AND language = ?`,
		strings.TrimSpace(post.Title),
		post.Excerpt,
		post.Content,
		post.Category,
		post.Author,
		post.ImageURL,
		post.IsFeatured,
		post.IsPublished,
		toMillis(time.Now().UTC()),
		post.ID,
		language,
	)
	if err != nil {
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeletePost removes one article row.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "blog_posts", id)
}

func (s *Store) deleteByID(ctx context.Context, table string, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
