package votes

import (
	"context"

	"Dealio/internal/core/posts"
)

// Service defines the business logic interface for votes
type Service interface {
	// CastVote records one vote and moves the post's counter by its delta.
	// Flow: validate direction -> lock post row -> reject duplicate -> adjust counter -> insert vote
	CastVote(ctx context.Context, postID int64, voter string, direction string) (*posts.Post, error)

	// RevokeVote deletes a vote and reverses its delta. Only the voter may revoke.
	RevokeVote(ctx context.Context, postID, voteID int64, requester string) (*posts.Post, error)

	// ListVotes returns every ledger row for the post
	ListVotes(ctx context.Context, postID int64) ([]*Vote, error)
}

// PostLock is the view of a post held under its row lock.
// All methods run inside the same transaction.
type PostLock interface {
	// Post returns the locked post, including any counter changes made so far
	Post() *posts.Post

	// FindVoteByVoter returns the voter's vote on the locked post, or ErrVoteNotFound
	FindVoteByVoter(ctx context.Context, voter string) (*Vote, error)

	// GetVote returns a vote by id regardless of post, or ErrVoteNotFound
	GetVote(ctx context.Context, voteID int64) (*Vote, error)

	// AdjustVotes adds delta to the locked post's counter
	AdjustVotes(ctx context.Context, delta int) error

	// InsertVote appends a ledger row for the locked post and sets its ID
	InsertVote(ctx context.Context, vote *Vote) error

	// DeleteVote removes a ledger row
	DeleteVote(ctx context.Context, voteID int64) error
}

// Repository defines the data access interface for votes
type Repository interface {
	// WithPostLock locks the post row (SELECT ... FOR UPDATE) for the duration of fn.
	// fn returning nil commits; an error rolls back and is returned unchanged.
	// Returns ErrPostNotFound without calling fn when the post does not exist.
	WithPostLock(ctx context.Context, postID int64, fn func(lock PostLock) error) error

	// ListByPost returns the ledger rows for a post, oldest first.
	// Returns ErrPostNotFound when the post does not exist.
	ListByPost(ctx context.Context, postID int64) ([]*Vote, error)

	// FindDrift returns every post whose counter differs from its ledger sum
	FindDrift(ctx context.Context) ([]Drift, error)

	// RepairCounts rewrites every drifted counter from the ledger and returns
	// the number of posts updated
	RepairCounts(ctx context.Context) (int64, error)
}
