package post

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete removes a post with its comments and votes
// DELETE /api/v1/posts/{id}
//
// Only the author may delete. Response body is the text "Deleted".
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return
	}

	if err := h.service.DeletePost(r.Context(), id, middleware.GetUsername(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteDeleted(w)
}
