package dto

import (
	"net/http"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// Error code constants exposed on the wire.
// Format: ERR_<DESCRIPTION>
const (
	ErrCodeUnknown             = "ERR_UNKNOWN"
	ErrCodeInternal            = "ERR_INTERNAL"
	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeValidationRejected  = "ERR_VALIDATION_REJECTED"
	ErrCodeIntegrityConflict   = "ERR_INTEGRITY_CONFLICT"
	ErrCodeHasActiveReferences = "ERR_HAS_ACTIVE_REFERENCES"
	ErrCodeRemoteUnavailable   = "ERR_REMOTE_UNAVAILABLE"
	ErrCodeAuditInputInvalid   = "ERR_AUDIT_INPUT_INVALID"
	ErrCodeInvalidInput        = "ERR_INVALID_INPUT"
	ErrCodeBadRequest          = "ERR_BAD_REQUEST"
	ErrCodeInvalidJSON         = "ERR_INVALID_JSON"
	ErrCodePayloadTooLarge     = "ERR_PAYLOAD_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeNotFound: http.StatusNotFound,

	// A reference that cannot be confirmed is a client error, even when the
	// owning service is down.
	ErrCodeValidationRejected: http.StatusBadRequest,
	ErrCodeInvalidInput:       http.StatusBadRequest,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeInvalidJSON:        http.StatusBadRequest,

	ErrCodeIntegrityConflict:   http.StatusConflict,
	ErrCodeHasActiveReferences: http.StatusConflict,

	ErrCodeRemoteUnavailable: http.StatusServiceUnavailable,
	ErrCodeAuditInputInvalid: http.StatusInternalServerError,
	ErrCodePayloadTooLarge:   http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to wire codes
var DomainErrorCodeMapping = map[string]string{
	shared.CodeNotFound:            ErrCodeNotFound,
	shared.CodeValidationRejected:  ErrCodeValidationRejected,
	shared.CodeIntegrityConflict:   ErrCodeIntegrityConflict,
	shared.CodeHasActiveReferences: ErrCodeHasActiveReferences,
	shared.CodeRemoteUnavailable:   ErrCodeRemoteUnavailable,
	shared.CodeAuditInputInvalid:   ErrCodeAuditInputInvalid,
	shared.CodeInvalidInput:        ErrCodeInvalidInput,
	shared.CodeInternal:            ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the wire format.
// Codes already in the wire format, and unknown codes, are returned as-is.
func NormalizeErrorCode(code string) string {
	if wire, ok := DomainErrorCodeMapping[code]; ok {
		return wire
	}
	return code
}
