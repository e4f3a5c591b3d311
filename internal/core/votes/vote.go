package votes

import (
	"time"
)

// Direction values accepted in the vote_action field
const (
	DirectionIncrement = "increment"
	DirectionDecrement = "decrement"
)

// Vote is one row of the vote ledger.
// A voter has at most one vote per post; the post's counter is the ledger sum.
type Vote struct {
	CreatedTime time.Time `json:"created_time" db:"created_time"`
	Voter       string    `json:"voter" db:"voter"`
	VoteType    string    `json:"vote_type" db:"vote_type"`
	ID          int64     `json:"id" db:"id"`
	PostID      int64     `json:"post_id" db:"post_id"`
}

// CastVoteRequest is the client payload for PUT /posts/{id}/votes
type CastVoteRequest struct {
	VoteAction string `json:"vote_action" validate:"required,oneof=increment decrement"`
}

// Delta returns the counter adjustment a vote of this type contributes
func Delta(voteType string) int {
	switch voteType {
	case DirectionIncrement:
		return 1
	case DirectionDecrement:
		return -1
	default:
		return 0
	}
}

// Drift is a post whose stored counter disagrees with its ledger sum
type Drift struct {
	PostID int64
	Stored int
	Ledger int
}
