package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound indicates the post being commented on doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrContentTooLong indicates comment content exceeds 10000 graphemes
	ErrContentTooLong = errors.New("comment content exceeds 10000 graphemes")

	// ErrContentEmpty indicates comment content is empty
	ErrContentEmpty = errors.New("comment content is required")

	// ErrNotAuthorized indicates the editor is not the comment's author
	ErrNotAuthorized = errors.New("not authorized")

	// ErrWrongPost indicates the comment belongs to a different post than the one addressed
	ErrWrongPost = errors.New("comment does not belong to this post")

	// ErrMissingAuthor indicates the request carried no caller identity
	ErrMissingAuthor = errors.New("missing username header")

	// ErrInvalidLimit indicates a keyset page size below one
	ErrInvalidLimit = errors.New("offset must be a positive integer")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrPostNotFound)
}

// IsForbidden checks if an error is an ownership failure
func IsForbidden(err error) bool {
	return errors.Is(err, ErrNotAuthorized) ||
		errors.Is(err, ErrWrongPost)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentTooLong) ||
		errors.Is(err, ErrContentEmpty) ||
		errors.Is(err, ErrMissingAuthor) ||
		errors.Is(err, ErrInvalidLimit)
}
