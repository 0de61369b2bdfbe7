package messaging

import (
	"testing"

	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_References(t *testing.T) {
	msg := NewMessage(" Need backup at sector 4 ", 1, 7)
	assert.Equal(t, "Need backup at sector 4", msg.Content)

	keys := msg.References()
	require.Len(t, keys, 4)
	assert.Equal(t, reference.KindRemoteUser, keys[1].Kind)
	assert.Equal(t, int64(7), *keys[1].ID)
	assert.False(t, keys[2].Present())
	assert.False(t, keys[3].Present())
}

func TestNotification_MarkRead(t *testing.T) {
	n := NewNotification("New message", "Sector 4", 3)
	assert.False(t, n.Read)

	n.MarkRead()
	assert.True(t, n.Read)

	keys := n.References()
	require.Len(t, keys, 2)
	assert.True(t, keys[0].Required)
	assert.False(t, keys[1].Present())
}
