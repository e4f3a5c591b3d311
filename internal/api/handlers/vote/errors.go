package vote

import (
	"errors"
	"log/slog"
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/core/votes"
)

// handleServiceError converts vote service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *votes.ValidationError
	switch {
	case errors.Is(err, votes.ErrPostNotFound):
		handlers.NotFound(w, "Post is not found")
	case errors.Is(err, votes.ErrVoteNotFound):
		handlers.NotFound(w, "Vote is not found")
	case errors.Is(err, votes.ErrAlreadyVoted):
		handlers.BadRequest(w, "User has already voted")
	case errors.Is(err, votes.ErrMissingVoter):
		handlers.BadRequest(w, "Missing username header")
	case errors.As(err, &valErr):
		handlers.BadRequest(w, valErr.Message)
	case errors.Is(err, votes.ErrNotAuthorized):
		handlers.Forbidden(w, "Vote does not belong to the user")
	default:
		slog.Error("vote handler error", "error", err)
		handlers.InternalError(w)
	}
}
