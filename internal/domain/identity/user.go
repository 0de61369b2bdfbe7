package identity

import (
	"strings"

	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
)

// User is a rescue-operations member: rescuer, coordinator or volunteer.
type User struct {
	shared.BaseEntity
	Name       string
	Email      string
	Phone      string
	StatusID   int64
	UserTypeID int64
	TeamID     *int64
	PhotoID    *int64
}

// UserKeySpecs declares the logical foreign keys carried by a user.
var UserKeySpecs = []reference.KeySpec{
	{Field: "status_id", Kind: reference.KindStatus, Required: true},
	{Field: "user_type_id", Kind: reference.KindUserType, Required: true},
	{Field: "team_id", Kind: reference.KindTeam},
	{Field: "photo_id", Kind: reference.KindPhoto},
}

// NewUser creates a user that has not been persisted yet
func NewUser(name, email, phone string, statusID, userTypeID int64) *User {
	u := &User{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		StatusID:   statusID,
		UserTypeID: userTypeID,
	}
	u.Normalize()
	return u
}

// Normalize trims the text fields and lower-cases the email.
func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Phone = strings.TrimSpace(u.Phone)
}

// References binds UserKeySpecs to the user's current values.
func (u *User) References() []reference.Key {
	return reference.Bind(UserKeySpecs,
		reference.ID(u.StatusID),
		reference.ID(u.UserTypeID),
		u.TeamID,
		u.PhotoID,
	)
}

// SetStatus moves the user to statusID and reports the previous value and
// whether it changed.
func (u *User) SetStatus(statusID int64) (previous int64, changed bool) {
	previous = u.StatusID
	if statusID == previous {
		return previous, false
	}
	u.StatusID = statusID
	u.Touch()
	return previous, true
}
