package user

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/core/users"
)

// UserIDHeader carries the identity provider's account id for profile changes
const UserIDHeader = "userId"

// UpdateProfileHandler handles profile picture uploads
type UpdateProfileHandler struct {
	service users.UserService
}

// NewUpdateProfileHandler creates a new profile picture handler
func NewUpdateProfileHandler(service users.UserService) *UpdateProfileHandler {
	return &UpdateProfileHandler{service: service}
}

// HandleProfileImage uploads a new picture and points the account at it
// POST /api/v1/users/profile-image (multipart, part "image"; headers userId, username)
func (h *UpdateProfileHandler) HandleProfileImage(w http.ResponseWriter, r *http.Request) {
	upload, done, err := readUpload(r)
	defer done()
	if err != nil {
		handleServiceError(w, err)
		return
	}

	_, err = h.service.UpdateProfileImage(
		r.Context(),
		r.Header.Get(UserIDHeader),
		r.Header.Get("username"),
		upload,
	)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Profile image is uploaded successfully",
	})
}
