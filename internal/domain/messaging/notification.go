package messaging

import (
	"strings"

	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
)

// Notification tells a user about something, usually a message.
type Notification struct {
	shared.BaseEntity
	Title           string
	Body            string
	Read            bool
	RecipientUserID int64
	MessageID       *int64
}

// NotificationKeySpecs declares the logical foreign keys carried by a notification.
var NotificationKeySpecs = []reference.KeySpec{
	{Field: "recipient_user_id", Kind: reference.KindRemoteUser, Required: true},
	{Field: "message_id", Kind: reference.KindMessage},
}

// NewNotification creates an unread notification
func NewNotification(title, body string, recipientUserID int64) *Notification {
	return &Notification{
		BaseEntity:      shared.NewBaseEntity(),
		Title:           strings.TrimSpace(title),
		Body:            strings.TrimSpace(body),
		RecipientUserID: recipientUserID,
	}
}

// References binds NotificationKeySpecs to the notification's current values.
func (n *Notification) References() []reference.Key {
	return reference.Bind(NotificationKeySpecs, reference.ID(n.RecipientUserID), n.MessageID)
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	if n.Read {
		return
	}
	n.Read = true
	n.Touch()
}
