package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/images"
)

// UploadImageHandler handles post image uploads
type UploadImageHandler struct {
	service images.Service
}

// NewUploadImageHandler creates a new post image upload handler
func NewUploadImageHandler(service images.Service) *UploadImageHandler {
	return &UploadImageHandler{service: service}
}

// HandleUpload stores an image for use in a post
// POST /api/v1/users/{username}/images/upload (multipart, part "image")
//
// Response: { "image_url": "https://..." }
func (h *UploadImageHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if caller := middleware.GetUsername(r); caller != username {
		handlers.Forbidden(w, "Images can only be uploaded for the calling user")
		return
	}

	upload, done, err := readUpload(r)
	defer done()
	if err != nil {
		handleServiceError(w, err)
		return
	}

	img, err := h.service.UploadPostImage(r.Context(), username, upload)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"image_url": img.ImageURL})
}
