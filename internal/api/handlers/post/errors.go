package post

import (
	"errors"
	"log/slog"
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/core/posts"
)

// handleServiceError maps post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *posts.ValidationError
	switch {
	case errors.Is(err, posts.ErrMissingAuthor):
		handlers.BadRequest(w, "Missing username header")
	case errors.As(err, &valErr):
		handlers.BadRequest(w, valErr.Field+": "+valErr.Message)
	case errors.Is(err, posts.ErrNotAuthorized):
		handlers.Forbidden(w, "User is not the post's owner")
	case posts.IsNotFound(err):
		handlers.NotFound(w, "Post is not found")
	default:
		slog.Error("post handler error", "error", err)
		handlers.InternalError(w)
	}
}
