package comments

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/comments"
)

// CreateCommentHandler handles comment creation
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new create comment handler
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// HandleCreate adds a comment by the caller to a post
// POST /api/v1/posts/{id}/comments
//
// Request body: { "text": "..." }
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return
	}

	var req comments.CommentRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	comment, err := h.service.CreateComment(r.Context(), postID, middleware.GetUsername(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}
