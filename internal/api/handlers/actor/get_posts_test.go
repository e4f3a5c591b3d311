package actor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Dealio/internal/core/pagination"
	"Dealio/internal/core/posts"
)

// stubPostService answers only the per-user listings
type stubPostService struct {
	posts.Service
	authored  map[string][]*posts.Post
	commented map[string][]*posts.Post
	err       error
}

func (s *stubPostService) ListByAuthor(ctx context.Context, author string, page int) (*pagination.Page[*posts.Post], error) {
	if s.err != nil {
		return nil, s.err
	}
	return pageOf(s.authored[author], page), nil
}

func (s *stubPostService) ListCommentedBy(ctx context.Context, username string, page int) (*pagination.Page[*posts.Post], error) {
	if s.err != nil {
		return nil, s.err
	}
	return pageOf(s.commented[username], page), nil
}

func (s *stubPostService) PerPage() int { return 2 }

// pageOf cuts all the way the repositories do with LIMIT/OFFSET
func pageOf(all []*posts.Post, page int) *pagination.Page[*posts.Post] {
	req := pagination.Normalize(page, 2, 2, 0)
	start := req.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + req.Limit()
	if end > len(all) {
		end = len(all)
	}
	return pagination.NewPage(all[start:end], len(all), req)
}

func newRouter(svc posts.Service) http.Handler {
	h := NewGetPostsHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/v1/users/{username}/posts", h.HandleAuthored)
	r.Get("/api/v1/users/{username}/commented_posts", h.HandleCommented)
	return r
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetPosts(t *testing.T) {
	svc := &stubPostService{
		authored: map[string][]*posts.Post{
			"alice": {{ID: 3, Author: "alice"}, {ID: 2, Author: "alice"}, {ID: 1, Author: "alice"}},
		},
		commented: map[string][]*posts.Post{
			"bob": {{ID: 2, Author: "alice"}},
		},
	}
	h := newRouter(svc)

	rec := get(h, "/api/v1/users/alice/posts?page=2")
	require.Equal(t, http.StatusOK, rec.Code)
	var body UserPostsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, 2, body.Limit)
	require.Len(t, body.Posts, 1)
	assert.Equal(t, int64(1), body.Posts[0].ID)

	rec = get(h, "/api/v1/users/bob/commented_posts")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)

	rec = get(h, "/api/v1/users/nobody/posts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"posts":[],"limit":2,"count":0}`, rec.Body.String())
}

func TestGetPosts_Errors(t *testing.T) {
	rec := get(newRouter(&stubPostService{err: errors.New("db down")}), "/api/v1/users/alice/posts")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = get(newRouter(&stubPostService{}), "/api/v1/users/alice/posts?page=two")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
