package identity

import (
	"context"

	appaudit "github.com/rescue-ops/backend/internal/application/audit"
	appshared "github.com/rescue-ops/backend/internal/application/shared"
	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/identity"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// UserService handles user management operations
type UserService struct {
	userRepo identity.UserRepository
	refs     appshared.References
	tx       appshared.TransactionScope
	recorder *appaudit.Recorder
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo identity.UserRepository,
	validator appshared.ReferenceValidator,
	observer appshared.RejectionObserver,
	tx appshared.TransactionScope,
	recorder *appaudit.Recorder,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		refs:     appshared.NewReferences(validator, observer, "user"),
		tx:       tx,
		recorder: recorder,
		logger:   logger,
	}
}

// Create creates a new user
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}

	user := identity.NewUser(input.Name, input.Email, input.Phone, input.StatusID, input.UserTypeID)
	user.TeamID = input.TeamID
	user.PhotoID = input.PhotoID
	if err := s.refs.Check(ctx, user.References()); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, appshared.StoreError(s.logger, "create user", err)
	}

	s.logger.Info("User created", zap.Int64("user_id", user.ID), zap.String("email", user.Email))
	dto := ToUserDTO(user)
	return &dto, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load user", err)
	}
	dto := ToUserDTO(user)
	return &dto, nil
}

// List retrieves a page of users
func (s *UserService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserDTO], error) {
	list, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list users", err)
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "count users", err)
	}

	items := make([]UserDTO, len(list))
	for i := range list {
		items[i] = ToUserDTO(&list[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update merges the supplied fields into the user. A status change is
// written together with its audit record.
func (s *UserService) Update(ctx context.Context, id int64, input UpdateUserInput) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load user", err)
	}
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}
	if err := s.refs.CheckSupplied(ctx, input.references()); err != nil {
		return nil, err
	}

	appshared.MergeString(&user.Name, input.Name)
	appshared.MergeString(&user.Email, input.Email)
	appshared.MergeString(&user.Phone, input.Phone)
	appshared.MergeID(&user.UserTypeID, input.UserTypeID)
	appshared.MergeOptionalID(&user.TeamID, input.TeamID)
	appshared.MergeOptionalID(&user.PhotoID, input.PhotoID)
	user.Normalize()
	user.Touch()

	if input.StatusID != nil {
		if previous, changed := user.SetStatus(*input.StatusID); changed {
			if err := s.updateWithTransition(ctx, user, previous, input.StatusReason); err != nil {
				return nil, err
			}
			dto := ToUserDTO(user)
			return &dto, nil
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, appshared.StoreError(s.logger, "update user", err)
	}
	dto := ToUserDTO(user)
	return &dto, nil
}

func (s *UserService) updateWithTransition(ctx context.Context, user *identity.User, previous int64, reason string) error {
	ctx, span := telemetry.StartSpan(ctx, "user.status_change",
		attribute.Int64(telemetry.AttrEntityID, user.ID))
	defer span.End()

	current := user.StatusID
	err := s.tx.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		if err := repos.Users().Update(ctx, user); err != nil {
			return err
		}
		_, err := s.recorder.WithRepository(repos.Audit()).Record(ctx,
			audit.UserSubject(user.ID), &previous, &current,
			appshared.StatusDetail(reason, previous, current))
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return appshared.StoreError(s.logger, "update user", err)
	}

	s.logger.Info("User status changed",
		zap.Int64("user_id", user.ID),
		zap.Int64("previous_status_id", previous),
		zap.Int64("status_id", current))
	return nil
}

// Delete deletes a user. It fails while the user leads a team.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return appshared.StoreError(s.logger, "load user", err)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return appshared.DeleteError(s.logger, "user", id, err)
	}
	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}
