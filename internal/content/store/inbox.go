package store

import (
	"context"
	"fmt"

	"github.com/avantiadvisory/avantiag.com/internal/content"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
)

// AddMessage stores a contact form submission. The inbox snapshot is not
// reloaded here; it refreshes when the panel reads it.
func (s *Store) AddMessage(ctx context.Context, message content.Message) error {
	_, err := s.db.CreateMessage(ctx, storage.MessageRecord{
		Name:    message.Name,
		Email:   message.Email,
		Phone:   message.Phone,
		Reason:  message.Reason,
		Message: message.Message,
	})
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

// MarkAsRead flags an inbox message as read and reloads the inbox.
func (s *Store) MarkAsRead(ctx context.Context, id int64) error {
	if err := s.db.MarkMessageRead(ctx, id); err != nil {
		return fmt.Errorf("mark message %d: %w", id, err)
	}
	return s.reloadMessages(ctx)
}

// DeleteMessage removes an inbox message and reloads the inbox.
func (s *Store) DeleteMessage(ctx context.Context, id int64) error {
	if err := s.db.DeleteMessage(ctx, id); err != nil {
		return fmt.Errorf("delete message %d: %w", id, err)
	}
	return s.reloadMessages(ctx)
}

func (s *Store) reloadMessages(ctx context.Context) error {
	messages, err := s.fetchMessages(ctx)
	if err != nil {
		return fmt.Errorf("reload messages: %w", err)
	}
	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()
	return nil
}
