package routes

import (
	"github.com/go-chi/chi/v5"

	"Dealio/internal/api/handlers/actor"
	"Dealio/internal/api/handlers/user"
	"Dealio/internal/api/middleware"
	"Dealio/internal/core/images"
	"Dealio/internal/core/posts"
	"Dealio/internal/core/users"
)

// RegisterUserRoutes registers per-user listings, profiles and uploads
func RegisterUserRoutes(r chi.Router, postService posts.Service, imageService images.Service, userService users.UserService) {
	postsHandler := actor.NewGetPostsHandler(postService)
	profileHandler := user.NewGetProfileHandler(userService)
	updateProfileHandler := user.NewUpdateProfileHandler(userService)
	uploadHandler := user.NewUploadImageHandler(imageService)

	r.Get("/users/{username}/posts", postsHandler.HandleAuthored)
	r.Get("/users/{username}/commented_posts", postsHandler.HandleCommented)
	r.Get("/users/{username}", profileHandler.HandleGetProfile)

	// profile-image identifies the account by the userId and username headers itself
	r.Post("/users/profile-image", updateProfileHandler.HandleProfileImage)
	r.With(middleware.RequireIdentity).Post("/users/{username}/images/upload", uploadHandler.HandleUpload)
}
