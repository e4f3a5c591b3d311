package post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/core/pagination"
	"Dealio/internal/core/posts"
)

// ListPostsResponse is a page of posts with navigation links
type ListPostsResponse struct {
	Prev  *string            `json:"prev"`
	Next  *string            `json:"next"`
	Posts []*common.PostView `json:"posts"`
	Count int                `json:"count"`
}

// ListHandler serves the post feed and search
type ListHandler struct {
	service  posts.Service
	validate *validator.Validate
}

// NewListHandler creates a new list/search handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service:  service,
		validate: validator.New(),
	}
}

// HandleList pages through posts newest first
// GET /api/v1/posts?page=N&category=Name
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := common.PageParam(r)
	if err != nil {
		handlers.BadRequest(w, "page must be an integer")
		return
	}

	result, err := h.service.ListPosts(r.Context(), r.URL.Query().Get("category"), page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writePage(w, r, result)
}

// HandleSearch filters posts by category and title substring
// POST /api/v1/posts/search?page=N
//
// Request body: { "category": "...", "term": "..." }, both optional.
func (h *ListHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	page, err := common.PageParam(r)
	if err != nil {
		handlers.BadRequest(w, "page must be an integer")
		return
	}

	var req posts.SearchRequest
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		handlers.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		handlers.BadRequest(w, "category and term must be short strings")
		return
	}
	req.Page = page

	result, err := h.service.SearchPosts(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writePage(w, r, result)
}

func writePage(w http.ResponseWriter, r *http.Request, result *pagination.Page[*posts.Post]) {
	prev, next := common.PageLinks(r, result.PrevPage(), result.NextPage())
	handlers.WriteJSON(w, http.StatusOK, ListPostsResponse{
		Posts: common.NewPostViews(result),
		Prev:  prev,
		Next:  next,
		Count: result.Total,
	})
}
