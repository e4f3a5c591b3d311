package post

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/core/posts"
)

// GetHandler serves a single post
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get post handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet returns one post
// GET /api/v1/posts/{id}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return
	}

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, common.NewPostView(post))
}
