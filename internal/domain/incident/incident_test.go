package incident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncident_References(t *testing.T) {
	inc := NewIncident("Flooded basement", "Water rising", 1, 2, 3)

	keys := inc.References()
	require.Len(t, keys, 4)
	for _, k := range keys[:3] {
		assert.True(t, k.Required, k.Field)
		assert.True(t, k.Present(), k.Field)
	}
	assert.Equal(t, "assigned_user_id", keys[3].Field)
	assert.False(t, keys[3].Present())
}

func TestIncident_Assign(t *testing.T) {
	inc := NewIncident("Fire", "", 1, 2, 3)
	user := int64(12)

	inc.Assign(&user)
	assert.Equal(t, int64(12), *inc.AssignedUserID)

	inc.Assign(nil)
	assert.Nil(t, inc.AssignedUserID)
}

func TestIncident_SetStatus(t *testing.T) {
	inc := NewIncident("Fire", "", 1, 2, 3)

	prev, changed := inc.SetStatus(2)
	assert.True(t, changed)
	assert.Equal(t, int64(1), prev)
	assert.Equal(t, int64(2), inc.StatusID)
}
