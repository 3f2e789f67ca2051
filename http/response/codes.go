package response

import "net/http"

const (
	// General & System
	ErrSystem         = "SYS_INTERNAL_ERROR"
	ErrBadRequest     = "SYS_BAD_REQUEST"
	ErrServiceUnavail = "SYS_SERVICE_UNAVAILABLE"
	ErrGatewayTimeout = "SYS_GATEWAY_TIMEOUT"

	// Auth
	ErrUnauthorized = "AUTH_UNAUTHORIZED"
	ErrForbidden    = "AUTH_FORBIDDEN"

	// Resource / Data (Database Mapped)
	ErrNotFound      = "RES_NOT_FOUND"
	ErrConflict      = "RES_CONFLICT"
	ErrPayloadTooBig = "RES_PAYLOAD_TOO_LARGE"

	// Business Logic
	ErrRuleViolation = "BIZ_RULE_VIOLATION"
	ErrRateLimit     = "BIZ_RATE_LIMIT_EXCEEDED"
)

// CodeForStatus returns the machine-readable code clients see for status.
// Unknown 4xx fall back to ErrBadRequest, everything else to ErrSystem.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest

	case http.StatusUnauthorized:
		return ErrUnauthorized

	case http.StatusForbidden:
		return ErrForbidden

	case http.StatusNotFound:
		return ErrNotFound

	case http.StatusConflict:
		return ErrConflict

	case http.StatusRequestEntityTooLarge:
		return ErrPayloadTooBig

	case http.StatusUnprocessableEntity:
		return ErrRuleViolation

	case http.StatusTooManyRequests:
		return ErrRateLimit

	case http.StatusServiceUnavailable:
		return ErrServiceUnavail

	case http.StatusGatewayTimeout:
		return ErrGatewayTimeout
	}

	if status >= 400 && status < 500 {
		return ErrBadRequest
	}
	return ErrSystem
}
