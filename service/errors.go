package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrBadParameter means that a provided parameter does not match the declared contract.
	ErrBadParameter = "bad_parameter"
	// ErrEntityNotFound means the remote service says the referenced ID does not exist.
	ErrEntityNotFound = "entity_not_found"
	// ErrEntityInactive means the referenced ID exists but is flagged inactive.
	ErrEntityInactive = "entity_inactive"
	// ErrServiceUnavailable means the remote service could not be reached after retries.
	ErrServiceUnavailable = "service_unavailable"
)

// ValidationError represents a failure within the validation gateway. Field names the
// offending identifier field when the error is raised by a field validator adapter
// (e.g. "employee_id"); it is empty for non-field errors.
type ValidationError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Field is the identifier field the error is keyed to, if any.
	Field string `json:"field,omitempty"`
	// Message is a human-readable message naming the entity kind and the offending ID.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewValidationError creates a new ValidationError.
func NewValidationError(code string, field string, message string, inner error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Inner:   inner,
	}
}

func NewEntityNotFoundError(field string, message string) *ValidationError {
	return NewValidationError(ErrEntityNotFound, field, message, nil)
}

func NewEntityInactiveError(field string, message string) *ValidationError {
	return NewValidationError(ErrEntityInactive, field, message, nil)
}

func NewServiceUnavailableError(field string, message string, inner error) *ValidationError {
	return NewValidationError(ErrServiceUnavailable, field, message, inner)
}

func NewBadParameterError(message string, inner error) *ValidationError {
	return NewValidationError(ErrBadParameter, "", message, inner)
}

func NewInternalServerError(message string, inner error) *ValidationError {
	return NewValidationError(ErrInternalServerError, "", message, inner)
}

func (e ValidationError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the wrapped reason.
func (e ValidationError) Unwrap() error {
	return e.Inner
}

// ToValidationError returns a pointer to a ValidationError, or nil if err is not one.
func ToValidationError(err error) *ValidationError {
	var e *ValidationError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsValidationError reports whether err is a ValidationError with the given code.
func IsValidationError(err error, code string) bool {
	e := ToValidationError(err)
	return e != nil && e.Code == code
}

func IsEntityNotFound(err error) bool {
	return IsValidationError(err, ErrEntityNotFound)
}

func IsEntityInactive(err error) bool {
	return IsValidationError(err, ErrEntityInactive)
}

func IsServiceUnavailable(err error) bool {
	return IsValidationError(err, ErrServiceUnavailable)
}

func IsBadParameter(err error) bool {
	return IsValidationError(err, ErrBadParameter)
}

func IsInternalServerError(err error) bool {
	return IsValidationError(err, ErrInternalServerError)
}
