package incident

import (
	"context"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// IncidentRepository defines the interface for incident persistence
type IncidentRepository interface {
	shared.Store[Incident]

	// CreateBatch inserts incidents in one statement, used by backfill
	CreateBatch(ctx context.Context, incidents []*Incident) error
}
