package user

import (
	"errors"
	"log/slog"
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/blobstore"
	"Dealio/internal/core/images"
	"Dealio/internal/core/users"
	"Dealio/internal/identity"
)

// handleServiceError maps user and image errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case images.IsValidationError(err):
		handlers.BadRequest(w, uploadMessage(err))
	case errors.Is(err, users.ErrMissingIdentity):
		handlers.BadRequest(w, "Missing userId or username header")
	case users.IsNotFound(err):
		handlers.NotFound(w, "User is not found")
	case errors.Is(err, blobstore.ErrNotConfigured):
		slog.Error("image upload rejected", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, handlers.KindInternal, "Image storage is not configured")
	case errors.Is(err, identity.ErrNotConfigured):
		slog.Error("identity lookup rejected", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, handlers.KindInternal, "Identity provider is not configured")
	default:
		slog.Error("user handler error", "error", err)
		handlers.InternalError(w)
	}
}

func uploadMessage(err error) string {
	switch {
	case errors.Is(err, images.ErrNoFile):
		return "No image was uploaded"
	case errors.Is(err, images.ErrNoFilename):
		return "No file was selected"
	default:
		return err.Error()
	}
}
