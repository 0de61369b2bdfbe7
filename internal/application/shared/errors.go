package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rescue-ops/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StoreError maps a store failure onto a client-facing error. Domain errors
// pass through, except a unique violation which becomes VALIDATION_REJECTED
// on the duplicated field. Anything else is logged and hidden behind
// INTERNAL_ERROR.
func StoreError(logger *zap.Logger, action string, err error) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == shared.CodeIntegrityConflict && domainErr.Field != "" {
			return shared.NewValidationRejected(domainErr.Field, domainErr.Message)
		}
		return domainErr
	}

	logger.Error("Failed to "+action, zap.Error(err))
	return shared.NewInternalError("Failed to " + action)
}

// DeleteError maps a store delete failure. Any integrity conflict becomes
// HAS_ACTIVE_REFERENCES for the resource.
func DeleteError(logger *zap.Logger, resource string, id int64, err error) error {
	if errors.Is(err, shared.ErrIntegrityConflict) {
		return shared.NewHasActiveReferences(resource, id)
	}
	return StoreError(logger, fmt.Sprintf("delete %s", resource), err)
}

// StatusDetail returns reason, or a generated description when reason is blank.
func StatusDetail(reason string, previous, current int64) string {
	if reason = strings.TrimSpace(reason); reason != "" {
		return reason
	}
	return fmt.Sprintf("status changed from %d to %d", previous, current)
}
