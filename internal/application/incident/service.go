package incident

import (
	"context"

	appaudit "github.com/rescue-ops/backend/internal/application/audit"
	appshared "github.com/rescue-ops/backend/internal/application/shared"
	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/incident"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Service handles incident operations. Every key an incident carries is
// owned by another service, so each write starts with remote lookups.
type Service struct {
	repo     incident.IncidentRepository
	refs     appshared.References
	tx       appshared.TransactionScope
	recorder *appaudit.Recorder
	logger   *zap.Logger
}

// NewService creates a new incident service
func NewService(
	repo incident.IncidentRepository,
	validator appshared.ReferenceValidator,
	observer appshared.RejectionObserver,
	tx appshared.TransactionScope,
	recorder *appaudit.Recorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:     repo,
		refs:     appshared.NewReferences(validator, observer, "incident"),
		tx:       tx,
		recorder: recorder,
		logger:   logger,
	}
}

// Create reports a new incident
func (s *Service) Create(ctx context.Context, input CreateIncidentInput) (*IncidentDTO, error) {
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}

	inc := incident.NewIncident(input.Title, input.Description, input.StatusID, input.CitizenID, input.AddressID)
	inc.AssignedUserID = input.AssignedUserID
	if err := s.refs.Check(ctx, inc.References()); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, inc); err != nil {
		return nil, appshared.StoreError(s.logger, "create incident", err)
	}

	s.logger.Info("Incident created",
		zap.Int64("incident_id", inc.ID),
		zap.Int64("citizen_id", inc.CitizenID),
		zap.Int64("address_id", inc.AddressID))
	dto := ToIncidentDTO(inc)
	return &dto, nil
}

// GetByID retrieves an incident by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*IncidentDTO, error) {
	inc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load incident", err)
	}
	dto := ToIncidentDTO(inc)
	return &dto, nil
}

// List retrieves a page of incidents
func (s *Service) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[IncidentDTO], error) {
	list, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list incidents", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "count incidents", err)
	}

	items := make([]IncidentDTO, len(list))
	for i := range list {
		items[i] = ToIncidentDTO(&list[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update merges the supplied fields into the incident. A status change is
// written together with its audit record.
func (s *Service) Update(ctx context.Context, id int64, input UpdateIncidentInput) (*IncidentDTO, error) {
	inc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load incident", err)
	}
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}
	if err := s.refs.CheckSupplied(ctx, input.references()); err != nil {
		return nil, err
	}

	appshared.MergeString(&inc.Title, input.Title)
	appshared.MergeString(&inc.Description, input.Description)
	appshared.MergeID(&inc.CitizenID, input.CitizenID)
	appshared.MergeID(&inc.AddressID, input.AddressID)
	if input.AssignedUserID != nil {
		assigned := inc.AssignedUserID
		appshared.MergeOptionalID(&assigned, input.AssignedUserID)
		inc.Assign(assigned)
	}
	inc.Touch()

	if input.StatusID != nil {
		if previous, changed := inc.SetStatus(*input.StatusID); changed {
			if err := s.updateWithTransition(ctx, inc, previous, input.StatusReason); err != nil {
				return nil, err
			}
			dto := ToIncidentDTO(inc)
			return &dto, nil
		}
	}

	if err := s.repo.Update(ctx, inc); err != nil {
		return nil, appshared.StoreError(s.logger, "update incident", err)
	}
	dto := ToIncidentDTO(inc)
	return &dto, nil
}

func (s *Service) updateWithTransition(ctx context.Context, inc *incident.Incident, previous int64, reason string) error {
	ctx, span := telemetry.StartSpan(ctx, "incident.status_change",
		attribute.Int64(telemetry.AttrEntityID, inc.ID))
	defer span.End()

	current := inc.StatusID
	err := s.tx.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		if err := repos.Incidents().Update(ctx, inc); err != nil {
			return err
		}
		_, err := s.recorder.WithRepository(repos.Audit()).Record(ctx,
			audit.IncidentSubject(inc.ID), &previous, &current,
			appshared.StatusDetail(reason, previous, current))
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return appshared.StoreError(s.logger, "update incident", err)
	}

	s.logger.Info("Incident status changed",
		zap.Int64("incident_id", inc.ID),
		zap.Int64("previous_status_id", previous),
		zap.Int64("status_id", current))
	return nil
}

// Delete deletes an incident
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return appshared.StoreError(s.logger, "load incident", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appshared.DeleteError(s.logger, "incident", id, err)
	}
	s.logger.Info("Incident deleted", zap.Int64("incident_id", id))
	return nil
}
