package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Dealio/internal/api/handlers"
	"Dealio/internal/core/users"
)

// GetProfileHandler serves public profiles from the identity provider
type GetProfileHandler struct {
	service users.UserService
}

// NewGetProfileHandler creates a new profile handler
func NewGetProfileHandler(service users.UserService) *GetProfileHandler {
	return &GetProfileHandler{service: service}
}

// HandleGetProfile returns a user's profile with the email masked
// GET /api/v1/users/{username}
func (h *GetProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": profile})
}
