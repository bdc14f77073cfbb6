package services

import "errors"

type ErrorCode string

const (
	ErrorInvalid        ErrorCode = "invalid"
	ErrorNotFound       ErrorCode = "not_found"
	ErrorOutOfRange     ErrorCode = "out_of_range"
	ErrorUnknownVariant ErrorCode = "unknown_variant"
	ErrorUnavailable    ErrorCode = "unavailable"
)

// ServiceError is the boundary error type. Validation rule violations are
// never ServiceErrors; they travel as the field→message maps returned by the
// validators. ServiceErrors cover caller contract breaches (stale id, bad
// index, unknown tag) and collaborator failures.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }

func NewOutOfRangeError(msg string) error {
	return &ServiceError{Code: ErrorOutOfRange, Message: msg}
}

func NewUnknownVariantError(msg string) error {
	return &ServiceError{Code: ErrorUnknownVariant, Message: msg}
}

func NewUnavailableError(msg string) error {
	return &ServiceError{Code: ErrorUnavailable, Message: msg}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// HasCode reports whether err is a ServiceError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	se, ok := AsServiceError(err)
	return ok && se.Code == code
}
