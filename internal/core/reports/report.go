package reports

import (
	"context"
	"time"
)

// Names is the fixed set of report reasons seeded by migration 001
var Names = []string{
	"Spam",
	"Expired deal",
	"Incorrect information",
	"Offensive content",
	"Duplicate",
	"Other",
}

// Reason is a seeded, immutable report reason
type Reason struct {
	Name string `json:"name" db:"name"`
	ID   int    `json:"id" db:"id"`
}

// Report flags exactly one post or one comment for moderation
type Report struct {
	CreatedTime time.Time `json:"created_time" db:"created_time"`
	PostID      *int64    `json:"post_id,omitempty" db:"post_id"`
	CommentID   *int64    `json:"comment_id,omitempty" db:"comment_id"`
	Description *string   `json:"description,omitempty" db:"description"`
	Reason      string    `json:"reason" db:"-"`
	Reporter    string    `json:"reporter" db:"reporter"`
	ID          int64     `json:"id" db:"id"`
	ReasonID    int       `json:"reason_id" db:"reason_id"`
}

// CreateReportRequest is the client payload for POST /reports
type CreateReportRequest struct {
	PostID      *int64  `json:"post_id" validate:"omitempty,gt=0"`
	CommentID   *int64  `json:"comment_id" validate:"omitempty,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Reason      string  `json:"reason" validate:"required,max=100"`
}

// TargetValidator checks that the reported post or comment exists
type TargetValidator interface {
	PostExists(ctx context.Context, postID int64) (bool, error)
	CommentExists(ctx context.Context, commentID int64) (bool, error)
}

// Service defines the business logic interface for reasons and reports
type Service interface {
	// ListReasons returns every reason name ordered by id
	ListReasons(ctx context.Context) ([]string, error)

	// CreateReport stores the report and publishes a moderation notification.
	// A failed publish leaves no report behind.
	CreateReport(ctx context.Context, reporter string, req CreateReportRequest) (*Report, error)
}

// Repository defines data access for reasons and reports
type Repository interface {
	ListReasons(ctx context.Context) ([]*Reason, error)

	// GetReasonByName returns ErrUnknownReason for names outside the seeded set
	GetReasonByName(ctx context.Context, name string) (*Reason, error)

	// Create inserts the report inside a transaction and calls beforeCommit with the
	// stored row. A beforeCommit error rolls the insert back and is returned.
	Create(ctx context.Context, report *Report, beforeCommit func(ctx context.Context, report *Report) error) error
}
