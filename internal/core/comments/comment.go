package comments

import (
	"time"
)

// Comment is a flat, author-owned remark on a post
type Comment struct {
	CreatedTime time.Time `json:"created_time" db:"created_time"`
	Author      string    `json:"author" db:"author"`
	Text        string    `json:"text" db:"text"`
	ID          int64     `json:"id" db:"id"`
	PostID      int64     `json:"post_id" db:"post_id"`
}

// CommentRequest is the client payload for creating or editing a comment
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}
