package routes

import (
	"github.com/go-chi/chi/v5"

	"Dealio/internal/api/handlers/comments"
	"Dealio/internal/api/middleware"
	commentsCore "Dealio/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints on the /api/v1 router
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service) {
	getHandler := comments.NewGetCommentsHandler(service)
	createHandler := comments.NewCreateCommentHandler(service)
	updateHandler := comments.NewUpdateCommentHandler(service)
	deleteHandler := comments.NewDeleteCommentHandler(service)

	r.Get("/posts/{id}/comments", getHandler.HandleList)
	r.Get("/posts/{id}/comments/recent", getHandler.HandleRecent)

	r.With(middleware.RequireIdentity).Post("/posts/{id}/comments", createHandler.HandleCreate)
	r.With(middleware.RequireIdentity).Put("/posts/{id}/comments/{commentId}", updateHandler.HandleUpdate)
	r.With(middleware.RequireIdentity).Delete("/posts/{id}/comments/{commentId}", deleteHandler.HandleDelete)
}
