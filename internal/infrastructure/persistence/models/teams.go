package models

import (
	"github.com/rescue-ops/backend/internal/domain/teams"
)

// TeamModel is the persistence model for the Team domain entity.
type TeamModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description  string `gorm:"type:text"`
	StatusID     int64  `gorm:"not null;index"`
	TeamTypeID   int64  `gorm:"not null;index"`
	CompanyID    int64  `gorm:"not null;index"`
	LeaderUserID *int64 `gorm:"index"`
}

// TableName returns the table name for GORM
func (TeamModel) TableName() string {
	return "teams"
}

// ToDomain converts the persistence model to a domain Team entity.
func (m *TeamModel) ToDomain() *teams.Team {
	return &teams.Team{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Description:  m.Description,
		StatusID:     m.StatusID,
		TeamTypeID:   m.TeamTypeID,
		CompanyID:    m.CompanyID,
		LeaderUserID: m.LeaderUserID,
	}
}

// FromDomain populates the persistence model from a domain Team entity.
func (m *TeamModel) FromDomain(t *teams.Team) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Description = t.Description
	m.StatusID = t.StatusID
	m.TeamTypeID = t.TeamTypeID
	m.CompanyID = t.CompanyID
	m.LeaderUserID = t.LeaderUserID
}

// TeamTypeModel is the persistence model for the TeamType catalog.
type TeamTypeModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TeamTypeModel) TableName() string {
	return "team_types"
}

// ToDomain converts the persistence model to a domain TeamType.
func (m *TeamTypeModel) ToDomain() *teams.TeamType {
	return &teams.TeamType{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain TeamType.
func (m *TeamTypeModel) FromDomain(t *teams.TeamType) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Description = t.Description
}

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	BaseModel
	Name      string `gorm:"type:varchar(200);not null;uniqueIndex"`
	TaxID     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email     string `gorm:"type:varchar(200)"`
	Phone     string `gorm:"type:varchar(50)"`
	AddressID int64  `gorm:"not null"`
	PhotoID   *int64
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *teams.Company {
	return &teams.Company{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		TaxID:      m.TaxID,
		Email:      m.Email,
		Phone:      m.Phone,
		AddressID:  m.AddressID,
		PhotoID:    m.PhotoID,
	}
}

// FromDomain populates the persistence model from a domain Company entity.
func (m *CompanyModel) FromDomain(c *teams.Company) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.TaxID = c.TaxID
	m.Email = c.Email
	m.Phone = c.Phone
	m.AddressID = c.AddressID
	m.PhotoID = c.PhotoID
}
