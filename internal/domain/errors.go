package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")

	// Remote call taxonomy. The queue treats all three the same way.
	ErrTransport = errors.New("transport error")
	ErrServer    = errors.New("server error")
	ErrDecode    = errors.New("decode error")
)

// ErrorKind classifies a failed remote call.
type ErrorKind string

const (
	ErrorKindTransport ErrorKind = "transport_error"
	ErrorKindServer    ErrorKind = "server_error"
	ErrorKindDecode    ErrorKind = "decode_error"
)

// Sentinel returns the sentinel error matching the kind.
func (k ErrorKind) Sentinel() error {
	switch k {
	case ErrorKindTransport:
		return ErrTransport
	case ErrorKindServer:
		return ErrServer
	case ErrorKindDecode:
		return ErrDecode
	}
	return nil
}

// RemoteError describes a failed call to the review backend.
// errors.Is matches both the kind sentinel and the wrapped cause.
type RemoteError struct {
	Op     string
	Kind   ErrorKind
	Status int // HTTP status, 0 when no response was received
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Op, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.Sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewRemoteError builds a RemoteError.
func NewRemoteError(op string, kind ErrorKind, status int, err error) *RemoteError {
	return &RemoteError{Op: op, Kind: kind, Status: status, Err: err}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
