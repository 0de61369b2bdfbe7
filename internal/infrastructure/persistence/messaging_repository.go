package persistence

import (
	"context"

	"github.com/rescue-ops/backend/internal/domain/messaging"
	"github.com/rescue-ops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMessageRepository implements MessageRepository using GORM
type GormMessageRepository struct {
	gormStore[messaging.Message, models.MessageModel, *models.MessageModel]
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{gormStore[messaging.Message, models.MessageModel, *models.MessageModel]{
		db:            db,
		resource:      "message",
		sortFields:    MessageSortFields,
		searchColumns: []string{"content"},
		dependents:    []dependent{{table: "notifications", column: "message_id"}},
	}}
}

// GormNotificationRepository implements NotificationRepository using GORM
type GormNotificationRepository struct {
	gormStore[messaging.Notification, models.NotificationModel, *models.NotificationModel]
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{gormStore[messaging.Notification, models.NotificationModel, *models.NotificationModel]{
		db:            db,
		resource:      "notification",
		sortFields:    NotificationSortFields,
		searchColumns: []string{"title", "body"},
	}}
}

// FindByRecipient lists notifications for a user, newest first
func (r *GormNotificationRepository) FindByRecipient(ctx context.Context, userID int64, unreadOnly bool) ([]messaging.Notification, error) {
	if unreadOnly {
		return r.findWhere(ctx, "recipient_user_id = ? AND is_read = ?", userID, false)
	}
	return r.findWhere(ctx, "recipient_user_id = ?", userID)
}

// Ensure repositories implement the domain interfaces
var (
	_ messaging.MessageRepository      = (*GormMessageRepository)(nil)
	_ messaging.NotificationRepository = (*GormNotificationRepository)(nil)
)
