package posts

import (
	"context"

	"Dealio/internal/core/pagination"
)

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost validates the payload, resolves the category and persists the post
	// with zero votes. author is the caller identity taken from the request header.
	CreatePost(ctx context.Context, author string, req CreatePostRequest) (*Post, error)

	// GetPost returns a single post or ErrPostNotFound
	GetPost(ctx context.Context, id int64) (*Post, error)

	// EditPost applies the non-nil fields of req. Only the author may edit.
	EditPost(ctx context.Context, id int64, editor string, req EditPostRequest) (*Post, error)

	// DeletePost removes the post and, by cascade, its comments and votes.
	// Only the author may delete.
	DeletePost(ctx context.Context, id int64, editor string) error

	// ListPosts pages through posts newest first, optionally within one category
	ListPosts(ctx context.Context, category string, page int) (*pagination.Page[*Post], error)

	// SearchPosts filters by category and/or title substring, newest first
	SearchPosts(ctx context.Context, req SearchRequest) (*pagination.Page[*Post], error)

	// ListByAuthor pages through the posts a user created
	ListByAuthor(ctx context.Context, author string, page int) (*pagination.Page[*Post], error)

	// ListCommentedBy pages through the posts a user has commented on
	ListCommentedBy(ctx context.Context, username string, page int) (*pagination.Page[*Post], error)

	// PerPage is the configured page size for post listings
	PerPage() int
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts the post and sets its ID and CreatedTime
	Create(ctx context.Context, post *Post) error

	// GetByID returns ErrPostNotFound when the id does not exist
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Exists reports whether a post with the id exists
	Exists(ctx context.Context, id int64) (bool, error)

	// Update writes every mutable column of post.
	// Returns ErrPostNotFound if the row disappeared.
	Update(ctx context.Context, post *Post) error

	// Delete removes the post; comments, votes and reports cascade
	Delete(ctx context.Context, id int64) error

	// List returns posts matching filter ordered by created_time DESC, id DESC
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Post, error)

	// Count returns how many posts match filter
	Count(ctx context.Context, filter ListFilter) (int, error)
}
