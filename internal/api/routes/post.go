package routes

import (
	"github.com/go-chi/chi/v5"

	"Dealio/internal/api/handlers/post"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints on the /api/v1 router.
// Mutations require the username identity header.
func RegisterPostRoutes(r chi.Router, service posts.Service) {
	createHandler := post.NewCreateHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	listHandler := post.NewListHandler(service)

	r.Get("/posts", listHandler.HandleList)
	r.Post("/posts/search", listHandler.HandleSearch)
	r.Get("/posts/{id}", getHandler.HandleGet)

	r.With(middleware.RequireIdentity).Post("/posts", createHandler.HandleCreate)
	r.With(middleware.RequireIdentity).Put("/posts/{id}", updateHandler.HandleUpdate)
	r.With(middleware.RequireIdentity).Delete("/posts/{id}", deleteHandler.HandleDelete)
}
