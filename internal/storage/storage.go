// Package storage defines the persistence contracts for site content.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("storage: not found")

// ErrAlreadyExists is returned when a unique constraint is violated.
var ErrAlreadyExists = errors.New("storage: already exists")

// PageRecord is one editable page row, one per (slug, language).
// Content holds a JSON object of sections without a dedicated column.
type PageRecord struct {
	ID              int64
	Slug            string
	Language        string
	Title           string
	Subtitle        string
	Description     string
	HeroImageURL    string
	Content         []byte
	MetaTitle       string
	MetaDescription string
	IsPublished     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServiceRecord is one catalog entry row, one per (service_key, language).
// Bullets and SubSections hold JSON arrays.
type ServiceRecord struct {
	ID           int64
	ServiceKey   string
	Language     string
	Title        string
	Description  string
	Bullets      []byte
	SubSections  []byte
	ImageURL     string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PostRecord is one article row.
type PostRecord struct {
	ID          int64
	Slug        string
	Language    string
	Title       string
	Excerpt     string
	Content     string
	Category    string
	Author      string
	ImageURL    string
	IsFeatured  bool
	IsPublished bool
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MessageRecord is one contact form submission.
type MessageRecord struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Reason    string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// MediaRecord is one media library entry.
type MediaRecord struct {
	ID        int64
	Name      string
	URL       string
	FileType  string
	FileSize  int64
	CreatedAt time.Time
}

// AdminUser is one panel account.
type AdminUser struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  time.Time
}

// Store is the full persistence surface used by the content store and the
// admin panel.
type Store interface {
	ListPages(ctx context.Context) ([]PageRecord, error)
	GetPage(ctx context.Context, slug, language string) (PageRecord, error)
	UpsertPage(ctx context.Context, page PageRecord) error

	ListServices(ctx context.Context) ([]ServiceRecord, error)
	UpsertService(ctx context.Context, service ServiceRecord) error

	ListPosts(ctx context.Context) ([]PostRecord, error)
	ListPostSlugs(ctx context.Context, language string) ([]string, error)
	CreatePost(ctx context.Context, post PostRecord) (int64, error)
	UpdatePost(ctx context.Context, post PostRecord) error
	DeletePost(ctx context.Context, id int64) error

	CreateMessage(ctx context.Context, message MessageRecord) (int64, error)
	ListMessages(ctx context.Context) ([]MessageRecord, error)
	MarkMessageRead(ctx context.Context, id int64) error
	DeleteMessage(ctx context.Context, id int64) error

	CreateMedia(ctx context.Context, media MediaRecord) (int64, error)
	ListMedia(ctx context.Context) ([]MediaRecord, error)
	DeleteMedia(ctx context.Context, id int64) error

	GetAdminByEmail(ctx context.Context, email string) (AdminUser, error)
	CreateAdmin(ctx context.Context, admin AdminUser) error
	TouchAdminLogin(ctx context.Context, id int64, at time.Time) error
}
