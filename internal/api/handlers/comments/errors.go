package comments

import (
	"errors"
	"log/slog"
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/core/comments"
)

// handleServiceError maps comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, comments.ErrPostNotFound):
		handlers.NotFound(w, "Post is not found")
	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.NotFound(w, "Comment is not found")
	case errors.Is(err, comments.ErrWrongPost):
		handlers.Forbidden(w, "Comment does not belong to the post")
	case errors.Is(err, comments.ErrNotAuthorized):
		handlers.Forbidden(w, "User is not the comment's author")
	case errors.Is(err, comments.ErrMissingAuthor):
		handlers.BadRequest(w, "Missing username header")
	case comments.IsValidationError(err):
		handlers.BadRequest(w, err.Error())
	default:
		slog.Error("comment handler error", "error", err)
		handlers.InternalError(w)
	}
}
