package comments

import (
	"net/http"

	"Dealio/internal/api/handlers"
	"Dealio/internal/api/handlers/common"
	"Dealio/internal/core/comments"
)

// ListCommentsResponse is a page of comments with navigation links
type ListCommentsResponse struct {
	Prev     *string             `json:"prev"`
	Next     *string             `json:"next"`
	Comments []*comments.Comment `json:"comments"`
	Count    int                 `json:"count"`
}

// GetCommentsHandler serves comment listings
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new comment listing handler
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{service: service}
}

// HandleList pages through a post's comments newest first
// GET /api/v1/posts/{id}/comments?page=N
func (h *GetCommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return
	}
	page, err := common.PageParam(r)
	if err != nil {
		handlers.BadRequest(w, "page must be an integer")
		return
	}

	result, err := h.service.ListComments(r.Context(), postID, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	prev, next := common.PageLinks(r, result.PrevPage(), result.NextPage())
	handlers.WriteJSON(w, http.StatusOK, ListCommentsResponse{
		Comments: result.Items,
		Prev:     prev,
		Next:     next,
		Count:    result.Total,
	})
}

// HandleRecent is the keyset listing used for infinite scroll
// GET /api/v1/posts/{id}/comments/recent?start_comment_id=N&offset=M
//
// offset is the number of comments to return and defaults to the page size.
func (h *GetCommentsHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	postID, err := common.PathID(r, "id")
	if err != nil {
		handlers.NotFound(w, "Post is not found")
		return
	}
	startID, err := common.OptionalInt64(r, "start_comment_id")
	if err != nil {
		handlers.BadRequest(w, "start_comment_id must be a positive integer")
		return
	}
	limit, err := common.OptionalInt(r, "offset", h.service.PerPage())
	if err != nil {
		handlers.BadRequest(w, "offset must be a positive integer")
		return
	}

	list, err := h.service.ListRecentComments(r.Context(), postID, startID, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"comments": list})
}
