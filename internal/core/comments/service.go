package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rivo/uniseg"
	"golang.org/x/sync/errgroup"

	"Dealio/internal/core/pagination"
)

const (
	// maxCommentGraphemes is the maximum number of grapheme clusters allowed in comment text
	maxCommentGraphemes = 10000

	maxPerPage = 100
)

// Options configures page sizes for comment listings
type Options struct {
	// PerPage is the page size for ListComments (COMMENTS_PER_PAGE)
	PerPage int
	// MaxRecent caps the keyset page size (MAX_RECENT_COMMENTS)
	MaxRecent int
}

type commentService struct {
	repo          Repository
	postValidator PostValidator
	validate      *validator.Validate
	logger        *slog.Logger
	opts          Options
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, postValidator PostValidator, opts Options, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.PerPage <= 0 {
		opts.PerPage = 20
	}
	if opts.MaxRecent <= 0 {
		opts.MaxRecent = 100
	}
	return &commentService{
		repo:          repo,
		postValidator: postValidator,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        logger,
		opts:          opts,
	}
}

func (s *commentService) PerPage() int {
	return s.opts.PerPage
}

func (s *commentService) CreateComment(ctx context.Context, postID int64, author string, req CommentRequest) (*Comment, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, ErrMissingAuthor
	}

	text, err := s.validateText(req)
	if err != nil {
		return nil, err
	}

	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID: postID,
		Author: author,
		Text:   text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		s.logger.Error("failed to create comment",
			"error", err,
			"post_id", postID,
			"author", author)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created",
		"comment_id", comment.ID,
		"post_id", postID,
		"author", author)
	return comment, nil
}

func (s *commentService) EditComment(ctx context.Context, postID, commentID int64, editor string, req CommentRequest) (*Comment, error) {
	comment, err := s.loadOwned(ctx, postID, commentID, editor)
	if err != nil {
		return nil, err
	}

	text, err := s.validateText(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateText(ctx, commentID, text); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update comment", "error", err, "comment_id", commentID)
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	comment.Text = text

	s.logger.Info("comment updated", "comment_id", commentID, "post_id", postID)
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, postID, commentID int64, editor string) error {
	if _, err := s.loadOwned(ctx, postID, commentID, editor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return err
		}
		s.logger.Error("failed to delete comment", "error", err, "comment_id", commentID)
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.Info("comment deleted", "comment_id", commentID, "post_id", postID)
	return nil
}

func (s *commentService) ListComments(ctx context.Context, postID int64, page int) (*pagination.Page[*Comment], error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	req := pagination.Normalize(page, s.opts.PerPage, s.opts.PerPage, maxPerPage)

	var (
		items []*Comment
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.ListByPost(gctx, postID, req.Limit(), req.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountByPost(gctx, postID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return pagination.NewPage(items, total, req), nil
}

func (s *commentService) ListRecentComments(ctx context.Context, postID int64, startID *int64, limit int) ([]*Comment, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	if limit > s.opts.MaxRecent {
		limit = s.opts.MaxRecent
	}

	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListByPostBefore(ctx, postID, startID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent comments: %w", err)
	}
	if list == nil {
		list = []*Comment{}
	}
	return list, nil
}

// loadOwned fetches a comment and enforces both guards: the editor must be the
// author, and the comment must hang off the addressed post
func (s *commentService) loadOwned(ctx context.Context, postID, commentID int64, editor string) (*Comment, error) {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		return nil, ErrMissingAuthor
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	if comment.Author != editor {
		s.logger.Info("rejected comment change by non-owner",
			"comment_id", commentID,
			"editor", editor)
		return nil, ErrNotAuthorized
	}
	if comment.PostID != postID {
		return nil, ErrWrongPost
	}
	return comment, nil
}

func (s *commentService) validateText(req CommentRequest) (string, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := s.validate.Struct(req); err != nil {
		return "", ErrContentEmpty
	}
	if uniseg.GraphemeClusterCount(req.Text) > maxCommentGraphemes {
		return "", ErrContentTooLong
	}
	return req.Text, nil
}

func (s *commentService) requirePost(ctx context.Context, postID int64) error {
	exists, err := s.postValidator.PostExists(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to verify post: %w", err)
	}
	if !exists {
		return ErrPostNotFound
	}
	return nil
}
