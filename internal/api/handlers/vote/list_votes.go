package vote

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/core/votes"
)

// ListVotesHandler serves the vote ledger of a post
type ListVotesHandler struct {
	service votes.Service
}

// NewListVotesHandler creates a new list votes handler
func NewListVotesHandler(service votes.Service) *ListVotesHandler {
	return &ListVotesHandler{service: service}
}

// HandleListVotes returns every vote on a post
// GET /api/v1/posts/{id}/votes
func (h *ListVotesHandler) HandleListVotes(w http.ResponseWriter, r *http.Request) {
	postID, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return
	}

	list, err := h.service.ListVotes(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"votes": list})
}
