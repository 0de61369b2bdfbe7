package identity

import (
	"context"

	appshared "github.com/rescue-ops/backend/internal/application/shared"
	"github.com/rescue-ops/backend/internal/domain/identity"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserTypeService manages the user type catalog
type UserTypeService struct {
	repo   identity.UserTypeRepository
	logger *zap.Logger
}

// NewUserTypeService creates a new user type service
func NewUserTypeService(repo identity.UserTypeRepository, logger *zap.Logger) *UserTypeService {
	return &UserTypeService{repo: repo, logger: logger}
}

// Create creates a user type
func (s *UserTypeService) Create(ctx context.Context, input CreateUserTypeInput) (*UserTypeDTO, error) {
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}

	ut := identity.NewUserType(input.Name, input.Description)
	if err := s.repo.Create(ctx, ut); err != nil {
		return nil, appshared.StoreError(s.logger, "create user type", err)
	}
	dto := ToUserTypeDTO(ut)
	return &dto, nil
}

// GetByID retrieves a user type by ID
func (s *UserTypeService) GetByID(ctx context.Context, id int64) (*UserTypeDTO, error) {
	ut, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load user type", err)
	}
	dto := ToUserTypeDTO(ut)
	return &dto, nil
}

// GetByName retrieves a user type by its unique name
func (s *UserTypeService) GetByName(ctx context.Context, name string) (*UserTypeDTO, error) {
	ut, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load user type", err)
	}
	dto := ToUserTypeDTO(ut)
	return &dto, nil
}

// List retrieves a page of user types
func (s *UserTypeService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserTypeDTO], error) {
	list, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list user types", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "count user types", err)
	}

	items := make([]UserTypeDTO, len(list))
	for i := range list {
		items[i] = ToUserTypeDTO(&list[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Delete deletes a user type. It fails while users reference it.
func (s *UserTypeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return appshared.StoreError(s.logger, "load user type", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appshared.DeleteError(s.logger, "user type", id, err)
	}
	return nil
}
