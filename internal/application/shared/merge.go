package shared

import (
	"strings"

	"github.com/rescue-ops/backend/internal/domain/reference"
)

// MergeString overwrites dst with the trimmed supplied value when one is given.
// Inputs tag such fields notblank, so a validated value never trims to "".
func MergeString(dst *string, supplied *string) {
	if supplied != nil {
		*dst = strings.TrimSpace(*supplied)
	}
}

// MergeID overwrites a required key when one is supplied.
func MergeID(dst *int64, supplied *int64) {
	if supplied != nil {
		*dst = *supplied
	}
}

// MergeOptionalID overwrites an optional key when one is supplied.
// A supplied zero clears it.
func MergeOptionalID(dst **int64, supplied *int64) {
	if supplied != nil {
		*dst = reference.ID(*supplied)
	}
}

