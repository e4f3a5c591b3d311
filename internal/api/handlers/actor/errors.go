package actor

import (
	"log/slog"
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/core/posts"
)

func handleServiceError(w http.ResponseWriter, err error) {
	if posts.IsValidationError(err) {
		handlers.BadRequest(w, err.Error())
		return
	}
	slog.Error("user listing error", "error", err)
	handlers.InternalError(w)
}
