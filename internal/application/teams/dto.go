// Package teams provides the application services for teams, team types and
// companies.
package teams

import (
	"time"

	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/teams"
)

// CreateTeamInput contains input for creating a team
type CreateTeamInput struct {
	Name         string `json:"name" validate:"required,notblank,max=120"`
	Description  string `json:"description" validate:"max=2000"`
	StatusID     int64  `json:"status_id" validate:"required,gt=0"`
	TeamTypeID   int64  `json:"team_type_id" validate:"required,gt=0"`
	CompanyID    int64  `json:"company_id" validate:"required,gt=0"`
	LeaderUserID *int64 `json:"leader_user_id" validate:"omitnil,gt=0"`
}

// UpdateTeamInput contains input for updating a team. Nil fields are left
// unchanged; a leader_user_id of 0 removes the leader.
type UpdateTeamInput struct {
	Name         *string `json:"name" validate:"omitnil,notblank,max=120"`
	Description  *string `json:"description" validate:"omitnil,max=2000"`
	StatusID     *int64  `json:"status_id" validate:"omitnil,gt=0"`
	TeamTypeID   *int64  `json:"team_type_id" validate:"omitnil,gt=0"`
	CompanyID    *int64  `json:"company_id" validate:"omitnil,gt=0"`
	LeaderUserID *int64  `json:"leader_user_id" validate:"omitnil,gte=0"`
	StatusReason string  `json:"status_reason" validate:"max=255"`
}

func (i UpdateTeamInput) references() []reference.Key {
	return reference.Bind(teams.TeamKeySpecs, i.StatusID, i.TeamTypeID, i.CompanyID, i.LeaderUserID)
}

// TeamDTO represents a team in responses
type TeamDTO struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	StatusID     int64     `json:"status_id"`
	TeamTypeID   int64     `json:"team_type_id"`
	CompanyID    int64     `json:"company_id"`
	LeaderUserID *int64    `json:"leader_user_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToTeamDTO converts a domain Team to TeamDTO
func ToTeamDTO(t *teams.Team) TeamDTO {
	return TeamDTO{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		StatusID:     t.StatusID,
		TeamTypeID:   t.TeamTypeID,
		CompanyID:    t.CompanyID,
		LeaderUserID: t.LeaderUserID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// CreateCompanyInput contains input for creating a company
type CreateCompanyInput struct {
	Name      string `json:"name" validate:"required,notblank,max=150"`
	TaxID     string `json:"tax_id" validate:"required,notblank,max=20"`
	Email     string `json:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" validate:"max=30"`
	AddressID int64  `json:"address_id" validate:"required,gt=0"`
	PhotoID   *int64 `json:"photo_id" validate:"omitnil,gt=0"`
}

// UpdateCompanyInput contains input for updating a company. A photo_id of 0
// removes the photo.
type UpdateCompanyInput struct {
	Name      *string `json:"name" validate:"omitnil,notblank,max=150"`
	TaxID     *string `json:"tax_id" validate:"omitnil,notblank,max=20"`
	Email     *string `json:"email" validate:"omitempty,email,max=200"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	AddressID *int64  `json:"address_id" validate:"omitnil,gt=0"`
	PhotoID   *int64  `json:"photo_id" validate:"omitnil,gte=0"`
}

func (i UpdateCompanyInput) references() []reference.Key {
	return reference.Bind(teams.CompanyKeySpecs, i.AddressID, i.PhotoID)
}

// CompanyDTO represents a company in responses
type CompanyDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	AddressID int64     `json:"address_id"`
	PhotoID   *int64    `json:"photo_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCompanyDTO converts a domain Company to CompanyDTO
func ToCompanyDTO(c *teams.Company) CompanyDTO {
	return CompanyDTO{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		AddressID: c.AddressID,
		PhotoID:   c.PhotoID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CreateTeamTypeInput contains input for creating a team type
type CreateTeamTypeInput struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// TeamTypeDTO represents a team type in responses
type TeamTypeDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTeamTypeDTO converts a domain TeamType to TeamTypeDTO
func ToTeamTypeDTO(t *teams.TeamType) TeamTypeDTO {
	return TeamTypeDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
