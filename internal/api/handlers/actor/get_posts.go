package actor

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/core/pagination"
	"Dealio/internal/core/posts"
)

// UserPostsResponse is a page of a user's posts. Limit is the page size.
type UserPostsResponse struct {
	Posts []*common.PostView `json:"posts"`
	Limit int                `json:"limit"`
	Count int                `json:"count"`
}

// GetPostsHandler serves per-user post listings
type GetPostsHandler struct {
	service posts.Service
}

// NewGetPostsHandler creates a new handler for user post listings
func NewGetPostsHandler(service posts.Service) *GetPostsHandler {
	return &GetPostsHandler{service: service}
}

// HandleAuthored lists the posts a user created, newest first
// GET /api/v1/users/{username}/posts?page=N
func (h *GetPostsHandler) HandleAuthored(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.service.ListByAuthor)
}

// HandleCommented lists the distinct posts a user commented on, newest first
// GET /api/v1/users/{username}/commented_posts?page=N
func (h *GetPostsHandler) HandleCommented(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.service.ListCommentedBy)
}

type listFunc func(ctx context.Context, username string, page int) (*pagination.Page[*posts.Post], error)

func (h *GetPostsHandler) serve(w http.ResponseWriter, r *http.Request, list listFunc) {
	page, err := common.PageParam(r)
	if err != nil {
		handlers.BadRequest(w, "page must be an integer")
		return
	}

	result, err := list(r.Context(), chi.URLParam(r, "username"), page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, UserPostsResponse{
		Posts: common.NewPostViews(result),
		Limit: h.service.PerPage(),
		Count: result.Total,
	})
}
