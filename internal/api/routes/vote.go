package routes

import (
	"github.com/go-chi/chi/v5"

	"Dealio/internal/api/handlers/vote"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/votes"
)

// RegisterVoteRoutes registers vote endpoints on the /api/v1 router
func RegisterVoteRoutes(r chi.Router, service votes.Service) {
	castHandler := vote.NewCastVoteHandler(service)
	deleteHandler := vote.NewDeleteVoteHandler(service)
	listHandler := vote.NewListVotesHandler(service)

	r.Get("/posts/{id}/votes", listHandler.HandleListVotes)

	// cast and revoke serialize per post in the vote service
	r.With(middleware.RequireIdentity).Put("/posts/{id}/votes", castHandler.HandleCastVote)
	r.With(middleware.RequireIdentity).Delete("/posts/{id}/votes/{voteId}", deleteHandler.HandleDeleteVote)
}
