package models

import (
	"github.com/rescue-ops/backend/internal/domain/messaging"
)

// MessageModel is the persistence model for the Message domain entity.
type MessageModel struct {
	BaseModel
	Content      string `gorm:"type:text;not null"`
	StatusID     int64  `gorm:"not null;index"`
	SenderUserID int64  `gorm:"not null;index"`
	TeamID       *int64 `gorm:"index"`
	PhotoID      *int64
}

// TableName returns the table name for GORM
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts the persistence model to a domain Message entity.
func (m *MessageModel) ToDomain() *messaging.Message {
	return &messaging.Message{
		BaseEntity:   m.BaseModel.ToDomain(),
		Content:      m.Content,
		StatusID:     m.StatusID,
		SenderUserID: m.SenderUserID,
		TeamID:       m.TeamID,
		PhotoID:      m.PhotoID,
	}
}

// FromDomain populates the persistence model from a domain Message entity.
func (m *MessageModel) FromDomain(msg *messaging.Message) {
	m.FromDomainBaseEntity(msg.BaseEntity)
	m.Content = msg.Content
	m.StatusID = msg.StatusID
	m.SenderUserID = msg.SenderUserID
	m.TeamID = msg.TeamID
	m.PhotoID = msg.PhotoID
}

// NotificationModel is the persistence model for the Notification domain entity.
type NotificationModel struct {
	BaseModel
	Title           string `gorm:"type:varchar(200);not null"`
	Body            string `gorm:"type:text"`
	Read            bool   `gorm:"column:is_read;not null;default:false"`
	RecipientUserID int64  `gorm:"not null;index"`
	MessageID       *int64 `gorm:"index"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification entity.
func (m *NotificationModel) ToDomain() *messaging.Notification {
	return &messaging.Notification{
		BaseEntity:      m.BaseModel.ToDomain(),
		Title:           m.Title,
		Body:            m.Body,
		Read:            m.Read,
		RecipientUserID: m.RecipientUserID,
		MessageID:       m.MessageID,
	}
}

// FromDomain populates the persistence model from a domain Notification entity.
func (m *NotificationModel) FromDomain(n *messaging.Notification) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.Title = n.Title
	m.Body = n.Body
	m.Read = n.Read
	m.RecipientUserID = n.RecipientUserID
	m.MessageID = n.MessageID
}
