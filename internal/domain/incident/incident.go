// Package incident holds emergencies reported by citizens.
package incident

import (
	"strings"

	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
)

// Incident is an emergency reported by a citizen at an address.
type Incident struct {
	shared.BaseEntity
	Title          string
	Description    string
	StatusID       int64
	CitizenID      int64
	AddressID      int64
	AssignedUserID *int64
}

// IncidentKeySpecs declares the logical foreign keys carried by an incident.
// The assigned user lives in the identity service and is looked up remotely.
var IncidentKeySpecs = []reference.KeySpec{
	{Field: "status_id", Kind: reference.KindStatus, Required: true},
	{Field: "citizen_id", Kind: reference.KindCitizen, Required: true},
	{Field: "address_id", Kind: reference.KindAddress, Required: true},
	{Field: "assigned_user_id", Kind: reference.KindRemoteUser},
}

// NewIncident creates an incident that has not been persisted yet
func NewIncident(title, description string, statusID, citizenID, addressID int64) *Incident {
	return &Incident{
		BaseEntity:  shared.NewBaseEntity(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		StatusID:    statusID,
		CitizenID:   citizenID,
		AddressID:   addressID,
	}
}

// References binds IncidentKeySpecs to the incident's current values.
func (i *Incident) References() []reference.Key {
	return reference.Bind(IncidentKeySpecs,
		reference.ID(i.StatusID),
		reference.ID(i.CitizenID),
		reference.ID(i.AddressID),
		i.AssignedUserID,
	)
}

// SetStatus moves the incident to statusID and reports the previous value
// and whether it changed.
func (i *Incident) SetStatus(statusID int64) (previous int64, changed bool) {
	previous = i.StatusID
	if statusID == previous {
		return previous, false
	}
	i.StatusID = statusID
	i.Touch()
	return previous, true
}

// Assign sets the responsible user. A nil id clears the assignment.
func (i *Incident) Assign(userID *int64) {
	i.AssignedUserID = userID
	i.Touch()
}
