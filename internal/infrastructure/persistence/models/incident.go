package models

import (
	"github.com/rescue-ops/backend/internal/domain/incident"
)

// IncidentModel is the persistence model for the Incident domain entity.
type IncidentModel struct {
	BaseModel
	Title          string `gorm:"type:varchar(200);not null"`
	Description    string `gorm:"type:text"`
	StatusID       int64  `gorm:"not null;index"`
	CitizenID      int64  `gorm:"not null;index"`
	AddressID      int64  `gorm:"not null"`
	AssignedUserID *int64 `gorm:"index"`
}

// TableName returns the table name for GORM
func (IncidentModel) TableName() string {
	return "incidents"
}

// ToDomain converts the persistence model to a domain Incident entity.
func (m *IncidentModel) ToDomain() *incident.Incident {
	return &incident.Incident{
		BaseEntity:     m.BaseModel.ToDomain(),
		Title:          m.Title,
		Description:    m.Description,
		StatusID:       m.StatusID,
		CitizenID:      m.CitizenID,
		AddressID:      m.AddressID,
		AssignedUserID: m.AssignedUserID,
	}
}

// FromDomain populates the persistence model from a domain Incident entity.
func (m *IncidentModel) FromDomain(i *incident.Incident) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.Title = i.Title
	m.Description = i.Description
	m.StatusID = i.StatusID
	m.CitizenID = i.CitizenID
	m.AddressID = i.AddressID
	m.AssignedUserID = i.AssignedUserID
}
