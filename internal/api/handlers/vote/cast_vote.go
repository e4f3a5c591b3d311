package vote

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/votes"
)

// CastVoteHandler handles vote casting
type CastVoteHandler struct {
	service votes.Service
}

// NewCastVoteHandler creates a new cast vote handler
func NewCastVoteHandler(service votes.Service) *CastVoteHandler {
	return &CastVoteHandler{service: service}
}

// HandleCastVote records one vote by the caller and moves the post's counter
// PUT /api/v1/posts/{id}/votes
//
// Request body: { "vote_action": "increment" | "decrement" }
// Response: the updated post
func (h *CastVoteHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	postID, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return
	}

	var req votes.CastVoteRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	post, err := h.service.CastVote(r.Context(), postID, middleware.GetUsername(r), req.VoteAction)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, common.NewPostView(post))
}
