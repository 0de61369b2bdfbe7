package identity

import (
	"context"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence.
// Delete fails with shared.ErrHasActiveReferences while a team names the
// user as leader.
type UserRepository interface {
	shared.Store[User]
}

// UserTypeRepository defines the interface for user type persistence.
// Delete fails with shared.ErrHasActiveReferences while users reference the type.
type UserTypeRepository interface {
	shared.Store[UserType]

	// FindByName finds a user type by its unique name
	FindByName(ctx context.Context, name string) (*UserType, error)
}
