package remote

import (
	"fmt"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// TransportError is any lookup failure other than a definite not-found:
// transport failure, timeout, an unexpected status or an unreadable body.
// It matches shared.ErrRemoteUnavailable under errors.Is.
type TransportError struct {
	Resource   string
	StatusCode int
	Detail     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Resource, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Resource, e.Detail)
}

// Unwrap returns the underlying transport error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the REMOTE_UNAVAILABLE domain error.
func (e *TransportError) Is(target error) bool {
	t, ok := target.(*shared.DomainError)
	return ok && t.Code == shared.CodeRemoteUnavailable
}
