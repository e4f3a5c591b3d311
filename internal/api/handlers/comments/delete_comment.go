package comments

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/comments"
)

// DeleteCommentHandler handles comment deletion
type DeleteCommentHandler struct {
	service comments.Service
}

// NewDeleteCommentHandler creates a new delete comment handler
func NewDeleteCommentHandler(service comments.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{service: service}
}

// HandleDelete removes the caller's comment
// DELETE /api/v1/posts/{id}/comments/{commentId}
func (h *DeleteCommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := commentPath(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteComment(r.Context(), postID, commentID, middleware.GetUsername(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteDeleted(w)
}
