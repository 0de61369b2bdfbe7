// Package teams holds rescue teams, their types and the companies that field them.
package teams

import (
	"strings"

	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
)

// Team is an operational unit (equipo) fielded by a company.
type Team struct {
	shared.BaseEntity
	Name         string
	Description  string
	StatusID     int64
	TeamTypeID   int64
	CompanyID    int64
	LeaderUserID *int64
}

// TeamKeySpecs declares the logical foreign keys carried by a team.
var TeamKeySpecs = []reference.KeySpec{
	{Field: "status_id", Kind: reference.KindStatus, Required: true},
	{Field: "team_type_id", Kind: reference.KindTeamType, Required: true},
	{Field: "company_id", Kind: reference.KindCompany, Required: true},
	{Field: "leader_user_id", Kind: reference.KindUser},
}

// NewTeam creates a team that has not been persisted yet
func NewTeam(name, description string, statusID, teamTypeID, companyID int64) *Team {
	return &Team{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		StatusID:    statusID,
		TeamTypeID:  teamTypeID,
		CompanyID:   companyID,
	}
}

// References binds TeamKeySpecs to the team's current values.
func (t *Team) References() []reference.Key {
	return reference.Bind(TeamKeySpecs,
		reference.ID(t.StatusID),
		reference.ID(t.TeamTypeID),
		reference.ID(t.CompanyID),
		t.LeaderUserID,
	)
}

// SetStatus moves the team to statusID and reports the previous value and
// whether it changed.
func (t *Team) SetStatus(statusID int64) (previous int64, changed bool) {
	previous = t.StatusID
	if statusID == previous {
		return previous, false
	}
	t.StatusID = statusID
	t.Touch()
	return previous, true
}
