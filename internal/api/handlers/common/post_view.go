package common

import (
	"fmt"

	"Dealio/internal/core/pagination"
	"Dealio/internal/core/posts"
)

// PostView is the wire form of a post. URL is the post's own API location;
// the deal's target link moves to product_url.
type PostView struct {
	*posts.Post
	ProductURL *string `json:"product_url"`
	URL        string  `json:"url"`
}

// PostLocation is the API path of a post
func PostLocation(id int64) string {
	return fmt.Sprintf("/api/v1/posts/%d", id)
}

// NewPostView wraps post for encoding
func NewPostView(post *posts.Post) *PostView {
	return &PostView{
		Post:       post,
		ProductURL: post.URL,
		URL:        PostLocation(post.ID),
	}
}

// NewPostViews wraps every post of a page
func NewPostViews(page *pagination.Page[*posts.Post]) []*PostView {
	views := make([]*PostView, 0, len(page.Items))
	for _, p := range page.Items {
		views = append(views, NewPostView(p))
	}
	return views
}
