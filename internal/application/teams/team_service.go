package teams

import (
	"context"

	appaudit "github.com/rescue-ops/backend/internal/application/audit"
	appshared "github.com/rescue-ops/backend/internal/application/shared"
	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/domain/teams"
	"github.com/rescue-ops/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// TeamService handles team operations. Status changes are audited.
type TeamService struct {
	teamRepo teams.TeamRepository
	refs     appshared.References
	tx       appshared.TransactionScope
	recorder *appaudit.Recorder
	logger   *zap.Logger
}

// NewTeamService creates a new team service
func NewTeamService(
	teamRepo teams.TeamRepository,
	validator appshared.ReferenceValidator,
	observer appshared.RejectionObserver,
	tx appshared.TransactionScope,
	recorder *appaudit.Recorder,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		refs:     appshared.NewReferences(validator, observer, "team"),
		tx:       tx,
		recorder: recorder,
		logger:   logger,
	}
}

// Create creates a new team
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (*TeamDTO, error) {
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}

	team := teams.NewTeam(input.Name, input.Description, input.StatusID, input.TeamTypeID, input.CompanyID)
	team.LeaderUserID = input.LeaderUserID
	if err := s.refs.Check(ctx, team.References()); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, appshared.StoreError(s.logger, "create team", err)
	}

	s.logger.Info("Team created", zap.Int64("team_id", team.ID), zap.String("name", team.Name))
	dto := ToTeamDTO(team)
	return &dto, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id int64) (*TeamDTO, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load team", err)
	}
	dto := ToTeamDTO(team)
	return &dto, nil
}

// List retrieves a page of teams
func (s *TeamService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[TeamDTO], error) {
	list, err := s.teamRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list teams", err)
	}
	total, err := s.teamRepo.Count(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "count teams", err)
	}

	items := make([]TeamDTO, len(list))
	for i := range list {
		items[i] = ToTeamDTO(&list[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListByCompany lists the teams fielded by a company
func (s *TeamService) ListByCompany(ctx context.Context, companyID int64) ([]TeamDTO, error) {
	list, err := s.teamRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list company teams", err)
	}
	items := make([]TeamDTO, len(list))
	for i := range list {
		items[i] = ToTeamDTO(&list[i])
	}
	return items, nil
}

// Update merges the supplied fields into the team. A status change is
// written together with its audit record.
func (s *TeamService) Update(ctx context.Context, id int64, input UpdateTeamInput) (*TeamDTO, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load team", err)
	}
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}
	if err := s.refs.CheckSupplied(ctx, input.references()); err != nil {
		return nil, err
	}

	appshared.MergeString(&team.Name, input.Name)
	appshared.MergeString(&team.Description, input.Description)
	appshared.MergeID(&team.TeamTypeID, input.TeamTypeID)
	appshared.MergeID(&team.CompanyID, input.CompanyID)
	appshared.MergeOptionalID(&team.LeaderUserID, input.LeaderUserID)
	team.Touch()

	if input.StatusID != nil {
		if previous, changed := team.SetStatus(*input.StatusID); changed {
			if err := s.updateWithTransition(ctx, team, previous, input.StatusReason); err != nil {
				return nil, err
			}
			dto := ToTeamDTO(team)
			return &dto, nil
		}
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, appshared.StoreError(s.logger, "update team", err)
	}
	dto := ToTeamDTO(team)
	return &dto, nil
}

func (s *TeamService) updateWithTransition(ctx context.Context, team *teams.Team, previous int64, reason string) error {
	ctx, span := telemetry.StartSpan(ctx, "team.status_change",
		attribute.Int64(telemetry.AttrEntityID, team.ID))
	defer span.End()

	current := team.StatusID
	err := s.tx.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		if err := repos.Teams().Update(ctx, team); err != nil {
			return err
		}
		_, err := s.recorder.WithRepository(repos.Audit()).Record(ctx,
			audit.TeamSubject(team.ID), &previous, &current,
			appshared.StatusDetail(reason, previous, current))
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return appshared.StoreError(s.logger, "update team", err)
	}

	s.logger.Info("Team status changed",
		zap.Int64("team_id", team.ID),
		zap.Int64("previous_status_id", previous),
		zap.Int64("status_id", current))
	return nil
}

// Delete deletes a team. It fails while users are members.
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	if _, err := s.teamRepo.FindByID(ctx, id); err != nil {
		return appshared.StoreError(s.logger, "load team", err)
	}
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return appshared.DeleteError(s.logger, "team", id, err)
	}
	s.logger.Info("Team deleted", zap.Int64("team_id", id))
	return nil
}
