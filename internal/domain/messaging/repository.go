package messaging

import (
	"context"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// MessageRepository defines the interface for message persistence.
// Delete fails with shared.ErrHasActiveReferences while notifications point at the message.
type MessageRepository interface {
	shared.Store[Message]
}

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	shared.Store[Notification]

	// FindByRecipient lists notifications for a user, newest first
	FindByRecipient(ctx context.Context, userID int64, unreadOnly bool) ([]Notification, error)
}
