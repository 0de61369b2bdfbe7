// Package incident provides the application service for reported incidents.
package incident

import (
	"time"

	"github.com/rescue-ops/backend/internal/domain/incident"
	"github.com/rescue-ops/backend/internal/domain/reference"
)

// CreateIncidentInput contains input for reporting an incident
type CreateIncidentInput struct {
	Title          string `json:"title" validate:"required,notblank,max=150"`
	Description    string `json:"description" validate:"max=2000"`
	StatusID       int64  `json:"status_id" validate:"required,gt=0"`
	CitizenID      int64  `json:"citizen_id" validate:"required,gt=0"`
	AddressID      int64  `json:"address_id" validate:"required,gt=0"`
	AssignedUserID *int64 `json:"assigned_user_id" validate:"omitnil,gt=0"`
}

// UpdateIncidentInput contains input for updating an incident. Nil fields are
// left unchanged; an assigned_user_id of 0 clears the assignment.
type UpdateIncidentInput struct {
	Title          *string `json:"title" validate:"omitnil,notblank,max=150"`
	Description    *string `json:"description" validate:"omitnil,max=2000"`
	StatusID       *int64  `json:"status_id" validate:"omitnil,gt=0"`
	CitizenID      *int64  `json:"citizen_id" validate:"omitnil,gt=0"`
	AddressID      *int64  `json:"address_id" validate:"omitnil,gt=0"`
	AssignedUserID *int64  `json:"assigned_user_id" validate:"omitnil,gte=0"`
	StatusReason   string  `json:"status_reason" validate:"max=255"`
}

func (i UpdateIncidentInput) references() []reference.Key {
	return reference.Bind(incident.IncidentKeySpecs, i.StatusID, i.CitizenID, i.AddressID, i.AssignedUserID)
}

// IncidentDTO represents an incident in responses
type IncidentDTO struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	StatusID       int64     `json:"status_id"`
	CitizenID      int64     `json:"citizen_id"`
	AddressID      int64     `json:"address_id"`
	AssignedUserID *int64    `json:"assigned_user_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToIncidentDTO converts a domain Incident to IncidentDTO
func ToIncidentDTO(i *incident.Incident) IncidentDTO {
	return IncidentDTO{
		ID:             i.ID,
		Title:          i.Title,
		Description:    i.Description,
		StatusID:       i.StatusID,
		CitizenID:      i.CitizenID,
		AddressID:      i.AddressID,
		AssignedUserID: i.AssignedUserID,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
