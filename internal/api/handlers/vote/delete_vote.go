package vote

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/votes"
)

// DeleteVoteHandler handles vote revocation
type DeleteVoteHandler struct {
	service votes.Service
}

// NewDeleteVoteHandler creates a new delete vote handler
func NewDeleteVoteHandler(service votes.Service) *DeleteVoteHandler {
	return &DeleteVoteHandler{service: service}
}

// HandleDeleteVote revokes the caller's vote and reverses its effect on the counter
// DELETE /api/v1/posts/{id}/votes/{voteId}
//
// Response: the updated post
func (h *DeleteVoteHandler) HandleDeleteVote(w http.ResponseWriter, r *http.Request) {
	postID, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return
	}
	voteID, err := common.PathID(r, "voteId")
	if err != nil {
		handlers.NotFound(w, "Vote is not found")
		return
	}

	post, err := h.service.RevokeVote(r.Context(), postID, voteID, middleware.GetUsername(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, common.NewPostView(post))
}
