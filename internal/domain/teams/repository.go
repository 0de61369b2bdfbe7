package teams

import (
	"context"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// TeamRepository defines the interface for team persistence.
// Delete fails with shared.ErrHasActiveReferences while users are members.
type TeamRepository interface {
	shared.Store[Team]

	// FindByCompany lists the teams fielded by a company
	FindByCompany(ctx context.Context, companyID int64) ([]Team, error)
}

// TeamTypeRepository defines the interface for team type persistence.
// Delete fails with shared.ErrHasActiveReferences while teams reference the type.
type TeamTypeRepository interface {
	shared.Store[TeamType]

	// FindByName finds a team type by its unique name
	FindByName(ctx context.Context, name string) (*TeamType, error)
}

// CompanyRepository defines the interface for company persistence.
// Delete fails with shared.ErrHasActiveReferences while teams reference the company.
type CompanyRepository interface {
	shared.Store[Company]
}
