package messaging

import (
	"context"

	appaudit "github.com/rescue-ops/backend/internal/application/audit"
	appshared "github.com/rescue-ops/backend/internal/application/shared"
	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/messaging"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// MessageService handles message operations. Status changes are audited.
type MessageService struct {
	repo     messaging.MessageRepository
	refs     appshared.References
	tx       appshared.TransactionScope
	recorder *appaudit.Recorder
	logger   *zap.Logger
}

// NewMessageService creates a new message service
func NewMessageService(
	repo messaging.MessageRepository,
	validator appshared.ReferenceValidator,
	observer appshared.RejectionObserver,
	tx appshared.TransactionScope,
	recorder *appaudit.Recorder,
	logger *zap.Logger,
) *MessageService {
	return &MessageService{
		repo:     repo,
		refs:     appshared.NewReferences(validator, observer, "message"),
		tx:       tx,
		recorder: recorder,
		logger:   logger,
	}
}

// Create sends a new message
func (s *MessageService) Create(ctx context.Context, input CreateMessageInput) (*MessageDTO, error) {
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}

	msg := messaging.NewMessage(input.Content, input.StatusID, input.SenderUserID)
	msg.TeamID = input.TeamID
	msg.PhotoID = input.PhotoID
	if err := s.refs.Check(ctx, msg.References()); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, appshared.StoreError(s.logger, "create message", err)
	}

	s.logger.Info("Message created", zap.Int64("message_id", msg.ID), zap.Int64("sender_user_id", msg.SenderUserID))
	dto := ToMessageDTO(msg)
	return &dto, nil
}

// GetByID retrieves a message by ID
func (s *MessageService) GetByID(ctx context.Context, id int64) (*MessageDTO, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load message", err)
	}
	dto := ToMessageDTO(msg)
	return &dto, nil
}

// List retrieves a page of messages
func (s *MessageService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[MessageDTO], error) {
	list, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list messages", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "count messages", err)
	}

	items := make([]MessageDTO, len(list))
	for i := range list {
		items[i] = ToMessageDTO(&list[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update merges the supplied fields into the message. A status change is
// written together with its audit record.
func (s *MessageService) Update(ctx context.Context, id int64, input UpdateMessageInput) (*MessageDTO, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load message", err)
	}
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}
	if err := s.refs.CheckSupplied(ctx, input.references()); err != nil {
		return nil, err
	}

	appshared.MergeString(&msg.Content, input.Content)
	appshared.MergeID(&msg.SenderUserID, input.SenderUserID)
	appshared.MergeOptionalID(&msg.TeamID, input.TeamID)
	appshared.MergeOptionalID(&msg.PhotoID, input.PhotoID)
	msg.Touch()

	if input.StatusID != nil {
		if previous, changed := msg.SetStatus(*input.StatusID); changed {
			if err := s.updateWithTransition(ctx, msg, previous, input.StatusReason); err != nil {
				return nil, err
			}
			dto := ToMessageDTO(msg)
			return &dto, nil
		}
	}

	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, appshared.StoreError(s.logger, "update message", err)
	}
	dto := ToMessageDTO(msg)
	return &dto, nil
}

func (s *MessageService) updateWithTransition(ctx context.Context, msg *messaging.Message, previous int64, reason string) error {
	ctx, span := telemetry.StartSpan(ctx, "message.status_change",
		attribute.Int64(telemetry.AttrEntityID, msg.ID))
	defer span.End()

	current := msg.StatusID
	err := s.tx.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		if err := repos.Messages().Update(ctx, msg); err != nil {
			return err
		}
		_, err := s.recorder.WithRepository(repos.Audit()).Record(ctx,
			audit.MessageSubject(msg.ID), &previous, &current,
			appshared.StatusDetail(reason, previous, current))
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return appshared.StoreError(s.logger, "update message", err)
	}

	s.logger.Info("Message status changed",
		zap.Int64("message_id", msg.ID),
		zap.Int64("previous_status_id", previous),
		zap.Int64("status_id", current))
	return nil
}

// Delete deletes a message. It fails while notifications point at it.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return appshared.StoreError(s.logger, "load message", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appshared.DeleteError(s.logger, "message", id, err)
	}
	s.logger.Info("Message deleted", zap.Int64("message_id", id))
	return nil
}
