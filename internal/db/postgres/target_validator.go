package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// TargetValidator answers existence checks for posts and comments.
// It serves comment creation and report creation.
type TargetValidator struct {
	db *sql.DB
}

// NewTargetValidator creates a new TargetValidator
func NewTargetValidator(db *sql.DB) *TargetValidator {
	return &TargetValidator{db: db}
}

func (v *TargetValidator) PostExists(ctx context.Context, postID int64) (bool, error) {
	return v.exists(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
}

func (v *TargetValidator) CommentExists(ctx context.Context, commentID int64) (bool, error) {
	return v.exists(ctx, `SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`, commentID)
}

func (v *TargetValidator) exists(ctx context.Context, query string, id int64) (bool, error) {
	var exists bool
	if err := v.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}
