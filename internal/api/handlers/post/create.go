package post

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/posts"
)

// CreateHandler handles post creation
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create post handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a post owned by the caller
// POST /api/v1/posts
//
// Responds 201 with the post and a Location header pointing at it.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req posts.CreatePostRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	post, err := h.service.CreatePost(r.Context(), middleware.GetUsername(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Location", common.PostLocation(post.ID))
	handlers.WriteJSON(w, http.StatusCreated, common.NewPostView(post))
}
