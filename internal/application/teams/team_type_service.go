package teams

import (
	"context"

	appshared "github.com/rescue-ops/backend/internal/application/shared"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/domain/teams"
	"go.uber.org/zap"
)

// TeamTypeService manages the team type catalog
type TeamTypeService struct {
	repo   teams.TeamTypeRepository
	logger *zap.Logger
}

// NewTeamTypeService creates a new team type service
func NewTeamTypeService(repo teams.TeamTypeRepository, logger *zap.Logger) *TeamTypeService {
	return &TeamTypeService{repo: repo, logger: logger}
}

// Create creates a team type
func (s *TeamTypeService) Create(ctx context.Context, input CreateTeamTypeInput) (*TeamTypeDTO, error) {
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}

	tt := teams.NewTeamType(input.Name, input.Description)
	if err := s.repo.Create(ctx, tt); err != nil {
		return nil, appshared.StoreError(s.logger, "create team type", err)
	}
	dto := ToTeamTypeDTO(tt)
	return &dto, nil
}

// GetByID retrieves a team type by ID
func (s *TeamTypeService) GetByID(ctx context.Context, id int64) (*TeamTypeDTO, error) {
	tt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load team type", err)
	}
	dto := ToTeamTypeDTO(tt)
	return &dto, nil
}

// List retrieves a page of team types
func (s *TeamTypeService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[TeamTypeDTO], error) {
	list, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list team types", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "count team types", err)
	}

	items := make([]TeamTypeDTO, len(list))
	for i := range list {
		items[i] = ToTeamTypeDTO(&list[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Delete deletes a team type. It fails while teams reference it.
func (s *TeamTypeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return appshared.StoreError(s.logger, "load team type", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appshared.DeleteError(s.logger, "team type", id, err)
	}
	return nil
}
