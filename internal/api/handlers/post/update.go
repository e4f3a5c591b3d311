package post

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/posts"
)

// UpdateHandler handles partial post edits
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new edit post handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate applies the fields present in the body
// PUT /api/v1/posts/{id}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return
	}

	var req posts.EditPostRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	post, err := h.service.EditPost(r.Context(), id, middleware.GetUsername(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, common.NewPostView(post))
}
