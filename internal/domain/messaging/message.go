// Package messaging holds operational messages and user notifications.
package messaging

import (
	"strings"

	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
)

// Message is an operational message sent by a user, optionally to a team.
type Message struct {
	shared.BaseEntity
	Content      string
	StatusID     int64
	SenderUserID int64
	TeamID       *int64
	PhotoID      *int64
}

// MessageKeySpecs declares the logical foreign keys carried by a message.
var MessageKeySpecs = []reference.KeySpec{
	{Field: "status_id", Kind: reference.KindStatus, Required: true},
	{Field: "sender_user_id", Kind: reference.KindRemoteUser, Required: true},
	{Field: "team_id", Kind: reference.KindRemoteTeam},
	{Field: "photo_id", Kind: reference.KindPhoto},
}

// NewMessage creates a message that has not been persisted yet
func NewMessage(content string, statusID, senderUserID int64) *Message {
	return &Message{
		BaseEntity:   shared.NewBaseEntity(),
		Content:      strings.TrimSpace(content),
		StatusID:     statusID,
		SenderUserID: senderUserID,
	}
}

// References binds MessageKeySpecs to the message's current values.
func (m *Message) References() []reference.Key {
	return reference.Bind(MessageKeySpecs,
		reference.ID(m.StatusID),
		reference.ID(m.SenderUserID),
		m.TeamID,
		m.PhotoID,
	)
}

// SetStatus moves the message to statusID and reports the previous value
// and whether it changed.
func (m *Message) SetStatus(statusID int64) (previous int64, changed bool) {
	previous = m.StatusID
	if statusID == previous {
		return previous, false
	}
	m.StatusID = statusID
	m.Touch()
	return previous, true
}
