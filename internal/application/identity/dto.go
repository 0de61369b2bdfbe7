// Package identity provides the application services for users and user types.
package identity

import (
	"time"

	"github.com/rescue-ops/backend/internal/domain/identity"
	"github.com/rescue-ops/backend/internal/domain/reference"
)

// CreateUserInput contains input for creating a user
type CreateUserInput struct {
	Name       string `json:"name" validate:"required,notblank,max=150"`
	Email      string `json:"email" validate:"required,notblank,email,max=200"`
	Phone      string `json:"phone" validate:"max=30"`
	StatusID   int64  `json:"status_id" validate:"required,gt=0"`
	UserTypeID int64  `json:"user_type_id" validate:"required,gt=0"`
	TeamID     *int64 `json:"team_id" validate:"omitnil,gt=0"`
	PhotoID    *int64 `json:"photo_id" validate:"omitnil,gt=0"`
}

// UpdateUserInput contains input for updating a user. Nil fields are left
// unchanged; a team_id or photo_id of 0 clears the reference.
type UpdateUserInput struct {
	Name         *string `json:"name" validate:"omitnil,notblank,max=150"`
	Email        *string `json:"email" validate:"omitnil,email,max=200"`
	Phone        *string `json:"phone" validate:"omitnil,max=30"`
	StatusID     *int64  `json:"status_id" validate:"omitnil,gt=0"`
	UserTypeID   *int64  `json:"user_type_id" validate:"omitnil,gt=0"`
	TeamID       *int64  `json:"team_id" validate:"omitnil,gte=0"`
	PhotoID      *int64  `json:"photo_id" validate:"omitnil,gte=0"`
	StatusReason string  `json:"status_reason" validate:"max=255"`
}

func (i UpdateUserInput) references() []reference.Key {
	return reference.Bind(identity.UserKeySpecs, i.StatusID, i.UserTypeID, i.TeamID, i.PhotoID)
}

// UserDTO represents a user in responses
type UserDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	StatusID   int64     `json:"status_id"`
	UserTypeID int64     `json:"user_type_id"`
	TeamID     *int64    `json:"team_id,omitempty"`
	PhotoID    *int64    `json:"photo_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToUserDTO converts a domain User to UserDTO
func ToUserDTO(u *identity.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		StatusID:   u.StatusID,
		UserTypeID: u.UserTypeID,
		TeamID:     u.TeamID,
		PhotoID:    u.PhotoID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// CreateUserTypeInput contains input for creating a user type
type CreateUserTypeInput struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UserTypeDTO represents a user type in responses
type UserTypeDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToUserTypeDTO converts a domain UserType to UserTypeDTO
func ToUserTypeDTO(t *identity.UserType) UserTypeDTO {
	return UserTypeDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
