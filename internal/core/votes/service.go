package votes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"Dealio/internal/core/posts"
)

type voteService struct {
	repo     Repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a new vote service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &voteService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (s *voteService) CastVote(ctx context.Context, postID int64, voter string, direction string) (*posts.Post, error) {
	voter = strings.TrimSpace(voter)
	if voter == "" {
		return nil, ErrMissingVoter
	}
	if err := s.validate.Struct(CastVoteRequest{VoteAction: direction}); err != nil {
		return nil, NewValidationError("vote_action", "must be 'increment' or 'decrement'")
	}

	var result *posts.Post
	err := s.repo.WithPostLock(ctx, postID, func(lock PostLock) error {
		_, err := lock.FindVoteByVoter(ctx, voter)
		switch {
		case err == nil:
			return ErrAlreadyVoted
		case !errors.Is(err, ErrVoteNotFound):
			return fmt.Errorf("failed to check existing vote: %w", err)
		}

		if err := lock.AdjustVotes(ctx, Delta(direction)); err != nil {
			return fmt.Errorf("failed to adjust vote count: %w", err)
		}
		if err := lock.InsertVote(ctx, &Vote{PostID: postID, Voter: voter, VoteType: direction}); err != nil {
			return fmt.Errorf("failed to record vote: %w", err)
		}

		result = lock.Post()
		return nil
	})
	if err != nil {
		if IsValidationError(err) || IsNotFound(err) {
			return nil, err
		}
		s.logger.Error("failed to cast vote",
			"error", err,
			"post_id", postID,
			"voter", voter,
			"direction", direction)
		return nil, err
	}

	s.logger.Info("vote cast",
		"post_id", postID,
		"voter", voter,
		"direction", direction,
		"votes", result.Votes)
	return result, nil
}

func (s *voteService) RevokeVote(ctx context.Context, postID, voteID int64, requester string) (*posts.Post, error) {
	requester = strings.TrimSpace(requester)
	if requester == "" {
		return nil, ErrMissingVoter
	}

	var result *posts.Post
	err := s.repo.WithPostLock(ctx, postID, func(lock PostLock) error {
		vote, err := lock.GetVote(ctx, voteID)
		if err != nil {
			if errors.Is(err, ErrVoteNotFound) {
				return err
			}
			return fmt.Errorf("failed to load vote: %w", err)
		}
		// a vote id from another post is treated as absent
		if vote.PostID != postID {
			return ErrVoteNotFound
		}
		if vote.Voter != requester {
			return ErrNotAuthorized
		}

		if err := lock.AdjustVotes(ctx, -Delta(vote.VoteType)); err != nil {
			return fmt.Errorf("failed to adjust vote count: %w", err)
		}
		if err := lock.DeleteVote(ctx, voteID); err != nil {
			return fmt.Errorf("failed to delete vote: %w", err)
		}

		result = lock.Post()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotAuthorized) {
			s.logger.Info("rejected vote revoke by non-owner",
				"post_id", postID,
				"vote_id", voteID,
				"requester", requester)
			return nil, err
		}
		if IsValidationError(err) || IsNotFound(err) {
			return nil, err
		}
		s.logger.Error("failed to revoke vote",
			"error", err,
			"post_id", postID,
			"vote_id", voteID)
		return nil, err
	}

	s.logger.Info("vote revoked",
		"post_id", postID,
		"vote_id", voteID,
		"votes", result.Votes)
	return result, nil
}

func (s *voteService) ListVotes(ctx context.Context, postID int64) ([]*Vote, error) {
	list, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	if list == nil {
		list = []*Vote{}
	}
	return list, nil
}
