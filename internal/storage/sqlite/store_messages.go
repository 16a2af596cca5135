package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

// CreateMessage inserts one contact form submission and returns its id.
func (s *Store) CreateMessage(ctx context.Context, message storage.MessageRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.ready(); err != nil {
		return 0, err
	}

	name := strings.TrimSpace(message.Name)
	email := strings.TrimSpace(message.Email)
	body := strings.TrimSpace(message.Message)
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if email == "" {
		return 0, fmt.Errorf("email is required")
	}
	if body == "" {
		return 0, fmt.Errorf("message is required")
	}
	createdAt := message.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO messages (name, email, phone, reason, message, is_read, created_at)
		 VALUES (?, ?, ?, ?, ?, 0, ?)`,
		name,
		email,
		strings.TrimSpace(message.Phone),
		strings.TrimSpace(message.Reason),
		body,
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert message: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("message insert id: %w", err)
	}
	return id, nil
}

// ListMessages returns all submissions, newest first.
func (s *Store) ListMessages(ctx context.Context) ([]storage.MessageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, email, phone, reason, message, is_read, created_at
		 FROM messages
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []storage.MessageRecord
	for rows.Next() {
		var message storage.MessageRecord
		var createdAt int64
		if err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Phone,
			&message.Reason,
			&message.Message,
			&message.IsRead,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		message.CreatedAt = fromMillis(createdAt)
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return messages, nil
}

// MarkMessageRead flags one submission as read.
func (s *Store) MarkMessageRead(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx, `UPDATE messages SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark message %d read: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark message %d read: %w", id, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteMessage removes one submission.
func (s *Store) DeleteMessage(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "messages", id)
}
