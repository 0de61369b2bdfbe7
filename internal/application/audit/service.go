package audit

import (
	"context"
	"sort"
	"time"

	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SubjectLookup confirms that a subject of one kind exists.
type SubjectLookup func(ctx context.Context, id int64) (bool, error)

// RecordDTO represents an audit record in responses
type RecordDTO struct {
	ID               int64     `json:"id"`
	SubjectKind      string    `json:"subject_kind"`
	SubjectID        int64     `json:"subject_id"`
	PreviousStatusID int64     `json:"previous_status_id"`
	NewStatusID      int64     `json:"new_status_id"`
	Detail           string    `json:"detail"`
	CreatedAt        time.Time `json:"created_at"`
}

// Service is the read side of the audit trail.
type Service struct {
	repo    audit.Repository
	lookups map[audit.SubjectKind]SubjectLookup
	logger  *zap.Logger
}

// NewService creates a new audit query service
func NewService(repo audit.Repository, lookups map[audit.SubjectKind]SubjectLookup, logger *zap.Logger) *Service {
	return &Service{repo: repo, lookups: lookups, logger: logger}
}

// History returns the transitions of one subject, newest first. The subject
// must exist.
func (s *Service) History(ctx context.Context, subject audit.Subject) ([]RecordDTO, error) {
	if subject.IsZero() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "audit subject is required")
	}

	// A kind this service cannot confirm is reported like a missing subject.
	lookup, ok := s.lookups[subject.Kind()]
	if !ok {
		return nil, shared.NewNotFound(string(subject.Kind()), subject.ID())
	}
	exists, err := lookup(ctx, subject.ID())
	if err != nil {
		s.logger.Error("Failed to look up audit subject",
			zap.String("subject", subject.String()), zap.Error(err))
		return nil, shared.NewInternalError("Failed to look up audit subject")
	}
	if !exists {
		return nil, shared.NewNotFound(string(subject.Kind()), subject.ID())
	}

	records, err := s.repo.FindBySubject(ctx, subject)
	if err != nil {
		s.logger.Error("Failed to load audit history",
			zap.String("subject", subject.String()), zap.Error(err))
		return nil, shared.NewInternalError("Failed to load audit history")
	}
	return toRecordDTOs(records), nil
}

// ListAll returns a page of the whole trail, newest first, with the total count.
func (s *Service) ListAll(ctx context.Context, filter shared.Filter) ([]RecordDTO, int64, error) {
	records, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list audit records", zap.Error(err))
		return nil, 0, shared.NewInternalError("Failed to list audit records")
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count audit records", zap.Error(err))
		return nil, 0, shared.NewInternalError("Failed to count audit records")
	}
	return toRecordDTOs(records), total, nil
}

// toRecordDTOs sorts newest first and converts. Ties on the timestamp fall
// back to the higher ID.
func toRecordDTOs(records []audit.Record) []RecordDTO {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID > records[j].ID
	})

	out := make([]RecordDTO, len(records))
	for i, r := range records {
		out[i] = RecordDTO{
			ID:               r.ID,
			SubjectKind:      string(r.Subject.Kind()),
			SubjectID:        r.Subject.ID(),
			PreviousStatusID: r.PreviousStatusID,
			NewStatusID:      r.NewStatusID,
			Detail:           r.Detail,
			CreatedAt:        r.CreatedAt,
		}
	}
	return out
}
