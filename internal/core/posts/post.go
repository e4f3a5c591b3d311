package posts

import (
	"time"
)

// DateLayout is the wire and storage layout for a deal's validity dates
const DateLayout = "2006-01-02"

// Post is a deal/coupon listing.
// Votes is denormalized: it always equals the number of increment votes minus the
// number of decrement votes recorded for the post in the vote ledger.
type Post struct {
	CreatedTime  time.Time `json:"created_time" db:"created_time"`
	StartDate    time.Time `json:"start_date" db:"start_date"`
	EndDate      time.Time `json:"end_date" db:"end_date"`
	URL          *string   `json:"url,omitempty" db:"url"`
	CouponCode   *string   `json:"coupon_code,omitempty" db:"coupon_code"`
	ImageURL     *string   `json:"image_url,omitempty" db:"image_url"`
	Description  *string   `json:"description,omitempty" db:"description"`
	Author       string    `json:"author" db:"author"`
	Title        string    `json:"title" db:"title"`
	Category     string    `json:"category" db:"-"`
	ID           int64     `json:"id" db:"id"`
	CategoryID   int       `json:"category_id" db:"category_id"`
	Votes        int       `json:"votes" db:"votes"`
	CommentCount int       `json:"comment_count" db:"-"`
}

// CreatePostRequest is the client payload for a new post.
// Dates are sent as YYYY-MM-DD strings.
type CreatePostRequest struct {
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	CouponCode  *string `json:"coupon_code,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// EditPostRequest is a partial update: nil fields are left unchanged
type EditPostRequest struct {
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Title       *string `json:"title,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	CouponCode  *string `json:"coupon_code,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// SearchRequest filters posts by category and/or a case-insensitive title substring.
// An empty Category or "All" means every category.
type SearchRequest struct {
	Category string `json:"category" validate:"omitempty,max=100"`
	Term     string `json:"term" validate:"omitempty,max=200"`
	Page     int    `json:"-"`
}

// ListFilter is the predicate the repository applies before ordering by recency.
// Zero-valued fields do not filter.
type ListFilter struct {
	CategoryID    *int
	TitleContains string
	Author        string
	CommentedBy   string
}
