package models

import (
	"testing"
	"time"

	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRecordModel_FromDomain_SetsOnlySubjectColumn(t *testing.T) {
	var m AuditRecordModel
	m.FromDomain(&audit.Record{
		Subject:          audit.TeamSubject(7),
		PreviousStatusID: 1,
		NewStatusID:      3,
		Detail:           "deployed",
		CreatedAt:        time.Now(),
	})

	require.NotNil(t, m.TeamID)
	assert.Equal(t, int64(7), *m.TeamID)
	assert.Nil(t, m.UserID)
	assert.Nil(t, m.MessageID)
	assert.Nil(t, m.IncidentID)

	// reusing a model for another kind clears the previous column
	m.FromDomain(&audit.Record{Subject: audit.IncidentSubject(2)})
	assert.Nil(t, m.TeamID)
	require.NotNil(t, m.IncidentID)
}

func TestAuditRecordModel_ToDomain(t *testing.T) {
	id := int64(4)
	m := AuditRecordModel{ID: 1, MessageID: &id, PreviousStatusID: 1, NewStatusID: 2, Detail: "read"}

	r, err := m.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, audit.MessageSubject(4), r.Subject)

	m.UserID = &id
	_, err = m.ToDomain()
	assert.Error(t, err)

	_, err = (&AuditRecordModel{ID: 9}).ToDomain()
	assert.Error(t, err)
}

func TestSubjectColumn(t *testing.T) {
	assert.Equal(t, "user_id", SubjectColumn(audit.SubjectUser))
	assert.Equal(t, "incident_id", SubjectColumn(audit.SubjectIncident))
	assert.Empty(t, SubjectColumn("company"))
}
