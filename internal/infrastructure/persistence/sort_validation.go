package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// Sort whitelists per table. Every list includes the base fields.

// CommonSortFields contains fields present on every table
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = withCommon("name", "email", "status_id", "user_type_id", "team_id")

// CatalogSortFields contains allowed sort fields for user types and team types
var CatalogSortFields = withCommon("name")

// TeamSortFields contains allowed sort fields for teams
var TeamSortFields = withCommon("name", "status_id", "team_type_id", "company_id")

// CompanySortFields contains allowed sort fields for companies
var CompanySortFields = withCommon("name", "tax_id")

// IncidentSortFields contains allowed sort fields for incidents
var IncidentSortFields = withCommon("title", "status_id", "citizen_id", "assigned_user_id")

// MessageSortFields contains allowed sort fields for messages
var MessageSortFields = withCommon("status_id", "sender_user_id", "team_id")

// NotificationSortFields contains allowed sort fields for notifications
var NotificationSortFields = withCommon("title", "is_read", "recipient_user_id")

func withCommon(fields ...string) map[string]bool {
	m := make(map[string]bool, len(CommonSortFields)+len(fields))
	for f := range CommonSortFields {
		m[f] = true
	}
	for _, f := range fields {
		m[f] = true
	}
	return m
}
