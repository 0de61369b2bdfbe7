package models

import (
	"fmt"
	"time"

	"github.com/rescue-ops/backend/internal/domain/audit"
)

// AuditRecordModel is the persistence model for an audit record.
// Exactly one of the subject columns is set; the others stay NULL.
type AuditRecordModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	UserID           *int64    `gorm:"index"`
	TeamID           *int64    `gorm:"index"`
	MessageID        *int64    `gorm:"index"`
	IncidentID       *int64    `gorm:"index"`
	PreviousStatusID int64     `gorm:"not null"`
	NewStatusID      int64     `gorm:"not null"`
	Detail           string    `gorm:"type:varchar(255);not null"`
	CreatedAt        time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AuditRecordModel) TableName() string {
	return "audit_records"
}

// SubjectColumn returns the column holding the id for a subject kind.
func SubjectColumn(kind audit.SubjectKind) string {
	switch kind {
	case audit.SubjectUser:
		return "user_id"
	case audit.SubjectTeam:
		return "team_id"
	case audit.SubjectMessage:
		return "message_id"
	case audit.SubjectIncident:
		return "incident_id"
	}
	return ""
}

// ToDomain converts the persistence model to a domain Record.
func (m *AuditRecordModel) ToDomain() (*audit.Record, error) {
	subject, err := m.subject()
	if err != nil {
		return nil, err
	}
	return &audit.Record{
		ID:               m.ID,
		Subject:          subject,
		PreviousStatusID: m.PreviousStatusID,
		NewStatusID:      m.NewStatusID,
		Detail:           m.Detail,
		CreatedAt:        m.CreatedAt,
	}, nil
}

func (m *AuditRecordModel) subject() (audit.Subject, error) {
	var (
		subject audit.Subject
		set     int
	)
	if m.UserID != nil {
		subject, set = audit.UserSubject(*m.UserID), set+1
	}
	if m.TeamID != nil {
		subject, set = audit.TeamSubject(*m.TeamID), set+1
	}
	if m.MessageID != nil {
		subject, set = audit.MessageSubject(*m.MessageID), set+1
	}
	if m.IncidentID != nil {
		subject, set = audit.IncidentSubject(*m.IncidentID), set+1
	}
	if set != 1 {
		return audit.Subject{}, fmt.Errorf("audit record %d has %d subjects set", m.ID, set)
	}
	return subject, nil
}

// FromDomain populates the persistence model from a domain Record.
// Only the column for the record's subject kind is set.
func (m *AuditRecordModel) FromDomain(r *audit.Record) {
	m.ID = r.ID
	m.UserID, m.TeamID, m.MessageID, m.IncidentID = nil, nil, nil, nil
	id := r.Subject.ID()
	switch r.Subject.Kind() {
	case audit.SubjectUser:
		m.UserID = &id
	case audit.SubjectTeam:
		m.TeamID = &id
	case audit.SubjectMessage:
		m.MessageID = &id
	case audit.SubjectIncident:
		m.IncidentID = &id
	}
	m.PreviousStatusID = r.PreviousStatusID
	m.NewStatusID = r.NewStatusID
	m.Detail = r.Detail
	m.CreatedAt = r.CreatedAt
}
