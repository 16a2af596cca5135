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

// GetAdminByEmail returns one panel account by its email, case-insensitive.
func (s *Store) GetAdminByEmail(ctx context.Context, email string) (storage.AdminUser, error) {
	if err := ctx.Err(); err != nil {
		return storage.AdminUser{}, err
	}
	if err := s.ready(); err != nil {
		return storage.AdminUser{}, err
	}

	var admin storage.AdminUser
	var createdAt, lastLoginAt int64
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at, last_login_at
		 FROM admin_users
		 WHERE email = ? COLLATE NOCASE`,
		strings.ToLower(strings.TrimSpace(email)))
	err := row.Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &createdAt, &lastLoginAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.AdminUser{}, storage.ErrNotFound
		}
		return storage.AdminUser{}, fmt.Errorf("query admin: %w", err)
	}
	admin.CreatedAt = fromMillis(createdAt)
	if lastLoginAt > 0 {
		admin.LastLoginAt = fromMillis(lastLoginAt)
	}
	return admin, nil
}

// CreateAdmin inserts one panel account.
func (s *Store) CreateAdmin(ctx context.Context, admin storage.AdminUser) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(admin.PasswordHash) == "" {
		return fmt.Errorf("password hash is required")
	}
	createdAt := admin.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO admin_users (email, password_hash, created_at, last_login_at)
		 VALUES (?, ?, ?, 0)`,
		email,
		admin.PasswordHash,
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// TouchAdminLogin records the latest successful login time.
func (s *Store) TouchAdminLogin(ctx context.Context, id int64, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE admin_users SET last_login_at = ? WHERE id = ?`,
		toMillis(at.UTC()), id)
	if err != nil {
		return fmt.Errorf("touch admin login %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("touch admin login %d: %w", id, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
