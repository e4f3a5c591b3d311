package comments

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/comments"
)

// UpdateCommentHandler handles comment edits
type UpdateCommentHandler struct {
	service comments.Service
}

// NewUpdateCommentHandler creates a new update comment handler
func NewUpdateCommentHandler(service comments.Service) *UpdateCommentHandler {
	return &UpdateCommentHandler{service: service}
}

// HandleUpdate replaces the text of the caller's comment
// PUT /api/v1/posts/{id}/comments/{commentId}
func (h *UpdateCommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := commentPath(w, r)
	if !ok {
		return
	}

	var req comments.CommentRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	comment, err := h.service.EditComment(r.Context(), postID, commentID, middleware.GetUsername(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, comment)
}

// commentPath parses {id} and {commentId}, writing a 404 when either is malformed
func commentPath(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	postID, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return 0, 0, false
	}
	commentID, err := common.PathID(r, "commentId")
	if err != nil {
		handlers.NotFound(w, "Comment is not found")
		return 0, 0, false
	}
	return postID, commentID, true
}
