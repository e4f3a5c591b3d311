package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Dealio/internal/core/posts"
	"Dealio/internal/core/votes"
)

// ledgerSum is the signed vote total for the joined votes alias v
const ledgerSum = `COALESCE(SUM(CASE v.vote_type WHEN 'increment' THEN 1 WHEN 'decrement' THEN -1 ELSE 0 END), 0)`

type postgresVoteRepo struct {
	db *sql.DB
}

// NewVoteRepository creates a new PostgreSQL vote repository
func NewVoteRepository(db *sql.DB) votes.Repository {
	return &postgresVoteRepo{db: db}
}

// WithPostLock holds SELECT ... FOR UPDATE on the post row while fn runs.
// Every cast and revoke on the same post is serialized by this lock, across processes.
func (r *postgresVoteRepo) WithPostLock(ctx context.Context, postID int64, fn func(lock votes.PostLock) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&id)
		if err == sql.ErrNoRows {
			return votes.ErrPostNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock post: %w", err)
		}

		post, err := getPostByID(ctx, tx, postID)
		if err != nil {
			return err
		}

		return fn(&txPostLock{tx: tx, post: post})
	})
}

func (r *postgresVoteRepo) ListByPost(ctx context.Context, postID int64) ([]*votes.Vote, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check post existence: %w", err)
	}
	if !exists {
		return nil, votes.ErrPostNotFound
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, post_id, voter, vote_type, created_time
		FROM votes
		WHERE post_id = $1
		ORDER BY created_time ASC, id ASC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*votes.Vote{}
	for rows.Next() {
		vote, err := scanVote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		result = append(result, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return result, nil
}

func (r *postgresVoteRepo) FindDrift(ctx context.Context) ([]votes.Drift, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.votes, `+ledgerSum+` AS ledger
		FROM posts p
		LEFT JOIN votes v ON v.post_id = p.id
		GROUP BY p.id, p.votes
		HAVING p.votes <> `+ledgerSum+`
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute vote drift: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var drift []votes.Drift
	for rows.Next() {
		var d votes.Drift
		if err := rows.Scan(&d.PostID, &d.Stored, &d.Ledger); err != nil {
			return nil, fmt.Errorf("failed to scan drift: %w", err)
		}
		drift = append(drift, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drift: %w", err)
	}
	return drift, nil
}

// RepairCounts takes an EXCLUSIVE lock on posts so no cast or revoke can
// interleave with the rewrite; readers are not blocked.
func (r *postgresVoteRepo) RepairCounts(ctx context.Context) (int64, error) {
	var updated int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `LOCK TABLE posts IN EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("failed to lock posts: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE posts p
			SET votes = l.ledger
			FROM (
				SELECT p2.id, `+ledgerSum+` AS ledger
				FROM posts p2
				LEFT JOIN votes v ON v.post_id = p2.id
				GROUP BY p2.id
			) l
			WHERE p.id = l.id AND p.votes <> l.ledger
		`)
		if err != nil {
			return fmt.Errorf("failed to repair vote counts: %w", err)
		}
		updated, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// txPostLock implements votes.PostLock on an open transaction
type txPostLock struct {
	tx   *sql.Tx
	post *posts.Post
}

func (l *txPostLock) Post() *posts.Post {
	p := *l.post
	return &p
}

func (l *txPostLock) FindVoteByVoter(ctx context.Context, voter string) (*votes.Vote, error) {
	vote, err := scanVote(l.tx.QueryRowContext(ctx, `
		SELECT id, post_id, voter, vote_type, created_time
		FROM votes
		WHERE post_id = $1 AND voter = $2
		ORDER BY id
		LIMIT 1
	`, l.post.ID, voter))
	if err == sql.ErrNoRows {
		return nil, votes.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vote by voter: %w", err)
	}
	return vote, nil
}

func (l *txPostLock) GetVote(ctx context.Context, voteID int64) (*votes.Vote, error) {
	vote, err := scanVote(l.tx.QueryRowContext(ctx, `
		SELECT id, post_id, voter, vote_type, created_time
		FROM votes
		WHERE id = $1
	`, voteID))
	if err == sql.ErrNoRows {
		return nil, votes.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return vote, nil
}

func (l *txPostLock) AdjustVotes(ctx context.Context, delta int) error {
	var current int
	err := l.tx.QueryRowContext(ctx,
		`UPDATE posts SET votes = votes + $2 WHERE id = $1 RETURNING votes`,
		l.post.ID, delta,
	).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to adjust votes: %w", err)
	}
	l.post.Votes = current
	return nil
}

func (l *txPostLock) InsertVote(ctx context.Context, vote *votes.Vote) error {
	err := l.tx.QueryRowContext(ctx, `
		INSERT INTO votes (post_id, voter, vote_type)
		VALUES ($1, $2, $3)
		RETURNING id, created_time
	`, l.post.ID, vote.Voter, vote.VoteType).Scan(&vote.ID, &vote.CreatedTime)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	vote.PostID = l.post.ID
	return nil
}

func (l *txPostLock) DeleteVote(ctx context.Context, voteID int64) error {
	result, err := l.tx.ExecContext(ctx, `DELETE FROM votes WHERE id = $1`, voteID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return votes.ErrVoteNotFound
	}
	return nil
}

func scanVote(row rowScanner) (*votes.Vote, error) {
	var vote votes.Vote
	if err := row.Scan(&vote.ID, &vote.PostID, &vote.Voter, &vote.VoteType, &vote.CreatedTime); err != nil {
		return nil, err
	}
	return &vote, nil
}
