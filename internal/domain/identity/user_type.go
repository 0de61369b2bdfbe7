package identity

import (
	"strings"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// UserType is the local catalog of user roles (rescuer, coordinator, ...).
type UserType struct {
	shared.BaseEntity
	Name        string
	Description string
}

// NewUserType creates a user type
func NewUserType(name, description string) *UserType {
	return &UserType{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
}
