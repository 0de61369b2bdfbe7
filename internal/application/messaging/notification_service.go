package messaging

import (
	"context"

	appshared "github.com/rescue-ops/backend/internal/application/shared"
	"github.com/rescue-ops/backend/internal/domain/messaging"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// NotificationService handles notification operations
type NotificationService struct {
	repo   messaging.NotificationRepository
	refs   appshared.References
	logger *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	repo messaging.NotificationRepository,
	validator appshared.ReferenceValidator,
	observer appshared.RejectionObserver,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		repo:   repo,
		refs:   appshared.NewReferences(validator, observer, "notification"),
		logger: logger,
	}
}

// Create creates an unread notification
func (s *NotificationService) Create(ctx context.Context, input CreateNotificationInput) (*NotificationDTO, error) {
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}

	n := messaging.NewNotification(input.Title, input.Body, input.RecipientUserID)
	n.MessageID = input.MessageID
	if err := s.refs.Check(ctx, n.References()); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, appshared.StoreError(s.logger, "create notification", err)
	}
	dto := ToNotificationDTO(n)
	return &dto, nil
}

// GetByID retrieves a notification by ID
func (s *NotificationService) GetByID(ctx context.Context, id int64) (*NotificationDTO, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load notification", err)
	}
	dto := ToNotificationDTO(n)
	return &dto, nil
}

// List retrieves a page of notifications
func (s *NotificationService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[NotificationDTO], error) {
	list, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list notifications", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "count notifications", err)
	}
	page := shared.NewPaginated(toNotificationDTOs(list), total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListForRecipient lists a user's notifications, newest first
func (s *NotificationService) ListForRecipient(ctx context.Context, userID int64, unreadOnly bool) ([]NotificationDTO, error) {
	if userID <= 0 {
		return nil, shared.NewValidationRejected("recipient_user_id", "must be greater than 0")
	}
	list, err := s.repo.FindByRecipient(ctx, userID, unreadOnly)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list notifications", err)
	}
	return toNotificationDTOs(list), nil
}

// Update merges the supplied fields into the notification
func (s *NotificationService) Update(ctx context.Context, id int64, input UpdateNotificationInput) (*NotificationDTO, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load notification", err)
	}
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}
	if input.Read != nil && !*input.Read && n.Read {
		return nil, shared.NewValidationRejected("read", "a read notification cannot be marked unread")
	}
	if err := s.refs.CheckSupplied(ctx, input.references()); err != nil {
		return nil, err
	}

	appshared.MergeString(&n.Title, input.Title)
	appshared.MergeString(&n.Body, input.Body)
	appshared.MergeID(&n.RecipientUserID, input.RecipientUserID)
	appshared.MergeOptionalID(&n.MessageID, input.MessageID)
	if input.Read != nil && *input.Read {
		n.MarkRead()
	}
	n.Touch()

	if err := s.repo.Update(ctx, n); err != nil {
		return nil, appshared.StoreError(s.logger, "update notification", err)
	}
	dto := ToNotificationDTO(n)
	return &dto, nil
}

// MarkRead marks a notification as read. Marking twice is a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) (*NotificationDTO, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load notification", err)
	}
	if n.Read {
		dto := ToNotificationDTO(n)
		return &dto, nil
	}

	n.MarkRead()
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, appshared.StoreError(s.logger, "update notification", err)
	}
	dto := ToNotificationDTO(n)
	return &dto, nil
}

// Delete deletes a notification
func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return appshared.StoreError(s.logger, "load notification", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appshared.DeleteError(s.logger, "notification", id, err)
	}
	return nil
}

func toNotificationDTOs(list []messaging.Notification) []NotificationDTO {
	items := make([]NotificationDTO, len(list))
	for i := range list {
		items[i] = ToNotificationDTO(&list[i])
	}
	return items
}
