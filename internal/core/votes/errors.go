package votes

import (
	"errors"
	"fmt"

	"Dealio/internal/core/posts"
)

var (
	// ErrPostNotFound indicates the post being voted on doesn't exist.
	// It is the posts package sentinel so either check matches.
	ErrPostNotFound = posts.ErrPostNotFound

	// ErrVoteNotFound indicates the vote doesn't exist or belongs to another post
	ErrVoteNotFound = errors.New("vote not found")

	// ErrAlreadyVoted indicates the voter already has a vote on this post
	ErrAlreadyVoted = errors.New("user has already voted on this post")

	// ErrNotAuthorized indicates the requester does not own the vote
	ErrNotAuthorized = errors.New("not authorized to revoke this vote")

	// ErrMissingVoter indicates the request carried no caller identity
	ErrMissingVoter = errors.New("missing username header")
)

// ValidationError represents a malformed vote request
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

// IsValidationError reports whether err should surface as a bad request.
// A duplicate vote is a client error too.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr) ||
		errors.Is(err, ErrAlreadyVoted) ||
		errors.Is(err, ErrMissingVoter)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrVoteNotFound)
}
