package models

import (
	"github.com/rescue-ops/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Name       string `gorm:"type:varchar(200);not null"`
	Email      string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone      string `gorm:"type:varchar(50)"`
	StatusID   int64  `gorm:"not null;index"`
	UserTypeID int64  `gorm:"not null;index"`
	TeamID     *int64 `gorm:"index"`
	PhotoID    *int64
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		StatusID:   m.StatusID,
		UserTypeID: m.UserTypeID,
		TeamID:     m.TeamID,
		PhotoID:    m.PhotoID,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Name = u.Name
	m.Email = u.Email
	m.Phone = u.Phone
	m.StatusID = u.StatusID
	m.UserTypeID = u.UserTypeID
	m.TeamID = u.TeamID
	m.PhotoID = u.PhotoID
}

// UserTypeModel is the persistence model for the UserType catalog.
type UserTypeModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (UserTypeModel) TableName() string {
	return "user_types"
}

// ToDomain converts the persistence model to a domain UserType.
func (m *UserTypeModel) ToDomain() *identity.UserType {
	return &identity.UserType{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain UserType.
func (m *UserTypeModel) FromDomain(t *identity.UserType) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Description = t.Description
}
