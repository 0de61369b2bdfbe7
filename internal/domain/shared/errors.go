package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Is reports whether target carries the same code.
// HAS_ACTIVE_REFERENCES is a specialisation of INTEGRITY_CONFLICT and matches both.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	if e.Code == t.Code {
		return true
	}
	return e.Code == CodeHasActiveReferences && t.Code == CodeIntegrityConflict
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes
const (
	CodeNotFound            = "NOT_FOUND"
	CodeValidationRejected  = "VALIDATION_REJECTED"
	CodeIntegrityConflict   = "INTEGRITY_CONFLICT"
	CodeHasActiveReferences = "HAS_ACTIVE_REFERENCES"
	CodeRemoteUnavailable   = "REMOTE_UNAVAILABLE"
	CodeAuditInputInvalid   = "AUDIT_INPUT_INVALID"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInternal            = "INTERNAL_ERROR"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrValidationRejected  = NewDomainError(CodeValidationRejected, "Validation rejected")
	ErrIntegrityConflict   = NewDomainError(CodeIntegrityConflict, "Integrity constraint violated")
	ErrHasActiveReferences = NewDomainError(CodeHasActiveReferences, "Resource has active references")
	ErrRemoteUnavailable   = NewDomainError(CodeRemoteUnavailable, "Remote service unavailable")
	ErrAuditInputInvalid   = NewDomainError(CodeAuditInputInvalid, "Invalid audit input")
	ErrInvalidInput        = NewDomainError(CodeInvalidInput, "Invalid input provided")
)

// NewNotFound creates a NOT_FOUND error naming the missing resource.
func NewNotFound(resource string, id int64) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s %d not found", resource, id))
}

// NewValidationRejected creates a VALIDATION_REJECTED error for a field.
func NewValidationRejected(field, reason string) *DomainError {
	return &DomainError{
		Code:    CodeValidationRejected,
		Message: reason,
		Field:   field,
	}
}

// NewIntegrityConflict creates an INTEGRITY_CONFLICT error.
func NewIntegrityConflict(message string) *DomainError {
	return NewDomainError(CodeIntegrityConflict, message)
}

// NewHasActiveReferences creates a HAS_ACTIVE_REFERENCES error for a resource
// that other aggregates still point at.
func NewHasActiveReferences(resource string, id int64) *DomainError {
	return NewDomainError(CodeHasActiveReferences, fmt.Sprintf("%s %d has active references", resource, id))
}

// NewAuditInputInvalid creates an AUDIT_INPUT_INVALID error.
func NewAuditInputInvalid(message string) *DomainError {
	return NewDomainError(CodeAuditInputInvalid, message)
}

// NewInternalError creates an INTERNAL_ERROR error.
func NewInternalError(message string) *DomainError {
	return NewDomainError(CodeInternal, message)
}

// NewUniqueViolation creates an INTEGRITY_CONFLICT error for a duplicated
// unique field. Services turn it into VALIDATION_REJECTED on writes.
func NewUniqueViolation(field string) *DomainError {
	return &DomainError{
		Code:    CodeIntegrityConflict,
		Message: "already exists",
		Field:   field,
	}
}
