package teams

import (
	"strings"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// TeamType is the local catalog of team specialities.
type TeamType struct {
	shared.BaseEntity
	Name        string
	Description string
}

// NewTeamType creates a team type
func NewTeamType(name, description string) *TeamType {
	return &TeamType{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
}
