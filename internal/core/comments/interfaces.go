package comments

import (
	"context"

	"Dealio/internal/core/pagination"
)

// PostValidator checks that the post a comment addresses exists
type PostValidator interface {
	PostExists(ctx context.Context, postID int64) (bool, error)
}

// Service defines the business logic interface for comments
type Service interface {
	CreateComment(ctx context.Context, postID int64, author string, req CommentRequest) (*Comment, error)

	// EditComment replaces the text. Only the author may edit, and only
	// through the post the comment belongs to.
	EditComment(ctx context.Context, postID, commentID int64, editor string, req CommentRequest) (*Comment, error)

	DeleteComment(ctx context.Context, postID, commentID int64, editor string) error

	// ListComments pages through a post's comments, newest first
	ListComments(ctx context.Context, postID int64, page int) (*pagination.Page[*Comment], error)

	// ListRecentComments is the keyset variant: the newest limit comments,
	// or the newest limit with id <= startID when startID is set
	ListRecentComments(ctx context.Context, postID int64, startID *int64, limit int) ([]*Comment, error)

	// PerPage is the configured page size for comment listings
	PerPage() int
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts the comment and sets its ID and CreatedTime
	Create(ctx context.Context, comment *Comment) error

	// GetByID returns ErrCommentNotFound when the id does not exist
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// UpdateText rewrites the text of a comment
	UpdateText(ctx context.Context, id int64, text string) error

	Delete(ctx context.Context, id int64) error

	// ListByPost returns comments ordered by created_time DESC, id DESC
	ListByPost(ctx context.Context, postID int64, limit, offset int) ([]*Comment, error)

	CountByPost(ctx context.Context, postID int64) (int, error)

	// ListByPostBefore returns up to limit comments with id <= startID (all when
	// startID is nil), ordered by created_time DESC, id DESC
	ListByPostBefore(ctx context.Context, postID int64, startID *int64, limit int) ([]*Comment, error)
}
