package reports

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownReason indicates the reason name is not part of the seeded set
	ErrUnknownReason = errors.New("unknown report reason")

	// ErrTargetNotFound indicates the reported post or comment does not exist
	ErrTargetNotFound = errors.New("reported post or comment not found")

	// ErrMissingReporter indicates the request carried no caller identity
	ErrMissingReporter = errors.New("missing username header")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is the client's fault.
// Reporting something that does not exist is a bad request, not a 404.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr) ||
		errors.Is(err, ErrUnknownReason) ||
		errors.Is(err, ErrTargetNotFound) ||
		errors.Is(err, ErrMissingReporter)
}
