package util

import (
	"errors"
	"fmt"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Extensions exposes the error code to GraphQL responses
// (gqlerrors.ExtendedError).
func (e *DomainError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// NewNotFound reports a missing resource.
func NewNotFound(resource string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError reports malformed input.
func NewValidationError(message string, err error) error {
	return &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: message,
		Err:     err,
	}
}

// IsNotFound reports whether err is a NOT_FOUND DomainError.
func IsNotFound(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND"
}
