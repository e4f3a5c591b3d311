package users

import (
	"errors"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when the identity provider has no matching account
	ErrUserNotFound = errors.New("user is not found")

	// ErrMissingIdentity is returned when a profile change lacks the userId or username header
	ErrMissingIdentity = errors.New("missing userId or username header")
)

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
