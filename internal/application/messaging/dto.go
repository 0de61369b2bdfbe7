// Package messaging provides the application services for operational
// messages and user notifications.
package messaging

import (
	"time"

	"github.com/rescue-ops/backend/internal/domain/messaging"
	"github.com/rescue-ops/backend/internal/domain/reference"
)

// CreateMessageInput contains input for sending a message
type CreateMessageInput struct {
	Content      string `json:"content" validate:"required,notblank,max=2000"`
	StatusID     int64  `json:"status_id" validate:"required,gt=0"`
	SenderUserID int64  `json:"sender_user_id" validate:"required,gt=0"`
	TeamID       *int64 `json:"team_id" validate:"omitnil,gt=0"`
	PhotoID      *int64 `json:"photo_id" validate:"omitnil,gt=0"`
}

// UpdateMessageInput contains input for updating a message. A team_id or
// photo_id of 0 clears the reference.
type UpdateMessageInput struct {
	Content      *string `json:"content" validate:"omitnil,notblank,max=2000"`
	StatusID     *int64  `json:"status_id" validate:"omitnil,gt=0"`
	SenderUserID *int64  `json:"sender_user_id" validate:"omitnil,gt=0"`
	TeamID       *int64  `json:"team_id" validate:"omitnil,gte=0"`
	PhotoID      *int64  `json:"photo_id" validate:"omitnil,gte=0"`
	StatusReason string  `json:"status_reason" validate:"max=255"`
}

func (i UpdateMessageInput) references() []reference.Key {
	return reference.Bind(messaging.MessageKeySpecs, i.StatusID, i.SenderUserID, i.TeamID, i.PhotoID)
}

// MessageDTO represents a message in responses
type MessageDTO struct {
	ID           int64     `json:"id"`
	Content      string    `json:"content"`
	StatusID     int64     `json:"status_id"`
	SenderUserID int64     `json:"sender_user_id"`
	TeamID       *int64    `json:"team_id,omitempty"`
	PhotoID      *int64    `json:"photo_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToMessageDTO converts a domain Message to MessageDTO
func ToMessageDTO(m *messaging.Message) MessageDTO {
	return MessageDTO{
		ID:           m.ID,
		Content:      m.Content,
		StatusID:     m.StatusID,
		SenderUserID: m.SenderUserID,
		TeamID:       m.TeamID,
		PhotoID:      m.PhotoID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CreateNotificationInput contains input for notifying a user
type CreateNotificationInput struct {
	Title           string `json:"title" validate:"required,notblank,max=150"`
	Body            string `json:"body" validate:"max=1000"`
	RecipientUserID int64  `json:"recipient_user_id" validate:"required,gt=0"`
	MessageID       *int64 `json:"message_id" validate:"omitnil,gt=0"`
}

// UpdateNotificationInput contains input for updating a notification.
// Read can only move from unread to read.
type UpdateNotificationInput struct {
	Title           *string `json:"title" validate:"omitnil,notblank,max=150"`
	Body            *string `json:"body" validate:"omitnil,max=1000"`
	RecipientUserID *int64  `json:"recipient_user_id" validate:"omitnil,gt=0"`
	MessageID       *int64  `json:"message_id" validate:"omitnil,gte=0"`
	Read            *bool   `json:"read"`
}

func (i UpdateNotificationInput) references() []reference.Key {
	return reference.Bind(messaging.NotificationKeySpecs, i.RecipientUserID, i.MessageID)
}

// NotificationDTO represents a notification in responses
type NotificationDTO struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Body            string    `json:"body,omitempty"`
	Read            bool      `json:"read"`
	RecipientUserID int64     `json:"recipient_user_id"`
	MessageID       *int64    `json:"message_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToNotificationDTO converts a domain Notification to NotificationDTO
func ToNotificationDTO(n *messaging.Notification) NotificationDTO {
	return NotificationDTO{
		ID:              n.ID,
		Title:           n.Title,
		Body:            n.Body,
		Read:            n.Read,
		RecipientUserID: n.RecipientUserID,
		MessageID:       n.MessageID,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
}
