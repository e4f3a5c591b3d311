package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrPostNotFound is returned when no post has the requested id
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthorized is returned when the caller is not the post's author
	ErrNotAuthorized = errors.New("caller is not the post's owner")

	// ErrMissingAuthor is returned when a mutation arrives without a caller identity
	ErrMissingAuthor = errors.New("missing username header")
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
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr) || errors.Is(err, ErrMissingAuthor)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}
