package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	for in, want := range map[string]string{
		"":               "DESC",
		"asc":            "ASC",
		"  ASC ":         "ASC",
		"desc":           "DESC",
		"ascending":      "DESC",
		"ASC; DELETE --": "DESC",
	} {
		assert.Equal(t, want, ValidateSortOrder(in), "input %q", in)
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		fields map[string]bool
		want   string
	}{
		{"blank falls back", "  ", IncidentSortFields, "created_at"},
		{"incident title", "title", IncidentSortFields, "title"},
		{"trimmed", " assigned_user_id ", IncidentSortFields, "assigned_user_id"},
		{"column of another table", "tax_id", IncidentSortFields, "created_at"},
		{"case sensitive", "Title", IncidentSortFields, "created_at"},
		{"expression rejected", "title, (SELECT 1)", IncidentSortFields, "created_at"},
		{"company tax id", "tax_id", CompanySortFields, "tax_id"},
		{"notification read flag", "is_read", NotificationSortFields, "is_read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSortField(tt.input, tt.fields, "created_at"))
		})
	}
}

func TestSortWhitelistsExtendCommonFields(t *testing.T) {
	for name, fields := range map[string]map[string]bool{
		"user":         UserSortFields,
		"catalog":      CatalogSortFields,
		"team":         TeamSortFields,
		"company":      CompanySortFields,
		"incident":     IncidentSortFields,
		"message":      MessageSortFields,
		"notification": NotificationSortFields,
	} {
		for common := range CommonSortFields {
			assert.True(t, fields[common], "%s lacks %s", name, common)
		}
		assert.Greater(t, len(fields), len(CommonSortFields), name)
	}

	// withCommon copies, so one table's list never leaks into another
	assert.False(t, CatalogSortFields["tax_id"])
	assert.False(t, CommonSortFields["name"])
}
