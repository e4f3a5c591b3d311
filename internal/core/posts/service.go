package posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"Dealio/internal/core/categories"
	"Dealio/internal/core/pagination"
)

// maxPerPage caps any configured page size
const maxPerPage = 100

type postService struct {
	repo       Repository
	categories categories.Service
	logger     *slog.Logger
	perPage    int
}

// NewPostService creates a new post service.
// perPage is the page size for every post listing (POSTS_PER_PAGE).
func NewPostService(repo Repository, categoryService categories.Service, perPage int, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if perPage <= 0 {
		perPage = 20
	}
	return &postService{
		repo:       repo,
		categories: categoryService,
		perPage:    perPage,
		logger:     logger,
	}
}

func (s *postService) PerPage() int {
	return s.perPage
}

// CreatePost validates and persists a new post.
// Flow: author check -> schema validation -> date parsing -> category resolution -> insert
func (s *postService) CreatePost(ctx context.Context, author string, req CreatePostRequest) (*Post, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, ErrMissingAuthor
	}

	if err := validateAgainstSchema(createPostSchema, req); err != nil {
		return nil, err
	}
	if err := validateTitle(&req.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	cat, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	post := &Post{
		Author:      author,
		Title:       strings.TrimSpace(req.Title),
		URL:         emptyToNil(req.URL),
		CouponCode:  emptyToNil(req.CouponCode),
		ImageURL:    emptyToNil(req.ImageURL),
		Description: emptyToNil(req.Description),
		StartDate:   start,
		EndDate:     end,
		CategoryID:  cat.ID,
		Category:    cat.Name,
		Votes:       0,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post",
			"error", err,
			"author", author,
			"category", cat.Name)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post_id", post.ID,
		"author", author,
		"category", cat.Name)

	return post, nil
}

func (s *postService) GetPost(ctx context.Context, id int64) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return post, nil
}

// EditPost applies a partial update. Only the author may edit.
// Concurrent edits are last-writer-wins.
func (s *postService) EditPost(ctx context.Context, id int64, editor string, req EditPostRequest) (*Post, error) {
	if strings.TrimSpace(editor) == "" {
		return nil, ErrMissingAuthor
	}

	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if editor != post.Author {
		s.logger.Info("rejected post edit by non-owner",
			"post_id", id,
			"editor", editor,
			"author", post.Author)
		return nil, ErrNotAuthorized
	}

	if err := validateAgainstSchema(editPostSchema, req); err != nil {
		return nil, err
	}
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.URL != nil {
		post.URL = emptyToNil(req.URL)
	}
	if req.CouponCode != nil {
		post.CouponCode = emptyToNil(req.CouponCode)
	}
	if req.ImageURL != nil {
		post.ImageURL = emptyToNil(req.ImageURL)
	}
	if req.Description != nil {
		post.Description = emptyToNil(req.Description)
	}
	if req.StartDate != nil {
		if post.StartDate, err = parseDate("start_date", *req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if post.EndDate, err = parseDate("end_date", *req.EndDate); err != nil {
			return nil, err
		}
	}
	if err := validateDateRange(post.StartDate, post.EndDate); err != nil {
		return nil, err
	}

	if req.Category != nil && *req.Category != post.Category {
		cat, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		post.CategoryID = cat.ID
		post.Category = cat.Name
	}

	if err := s.repo.Update(ctx, post); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update post", "error", err, "post_id", id)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("post edited", "post_id", id, "editor", editor)
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id int64, editor string) error {
	if strings.TrimSpace(editor) == "" {
		return ErrMissingAuthor
	}

	post, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}

	if editor != post.Author {
		s.logger.Info("rejected post delete by non-owner",
			"post_id", id,
			"editor", editor,
			"author", post.Author)
		return ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return err
		}
		s.logger.Error("failed to delete post", "error", err, "post_id", id)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("post deleted", "post_id", id, "editor", editor)
	return nil
}

func (s *postService) ListPosts(ctx context.Context, category string, page int) (*pagination.Page[*Post], error) {
	filter := ListFilter{}
	if !isAllCategories(category) {
		cat, err := s.resolveCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = &cat.ID
	}
	return s.page(ctx, filter, page)
}

// SearchPosts composes the filter from the four combinations of
// (any category | one category) x (no term | title substring).
// Results stay in recency order; there is no relevance ranking.
func (s *postService) SearchPosts(ctx context.Context, req SearchRequest) (*pagination.Page[*Post], error) {
	term := strings.TrimSpace(req.Term)
	anyCategory := isAllCategories(req.Category)

	var filter ListFilter
	switch {
	case anyCategory && term == "":
		filter = ListFilter{}
	case anyCategory:
		filter = ListFilter{TitleContains: term}
	case term == "":
		cat, err := s.resolveCategory(ctx, req.Category)
		if err != nil {
			return nil, err
		}
		filter = ListFilter{CategoryID: &cat.ID}
	default:
		cat, err := s.resolveCategory(ctx, req.Category)
		if err != nil {
			return nil, err
		}
		filter = ListFilter{CategoryID: &cat.ID, TitleContains: term}
	}

	return s.page(ctx, filter, req.Page)
}

func (s *postService) ListByAuthor(ctx context.Context, author string, page int) (*pagination.Page[*Post], error) {
	if strings.TrimSpace(author) == "" {
		return nil, NewValidationError("username", "required")
	}
	return s.page(ctx, ListFilter{Author: author}, page)
}

func (s *postService) ListCommentedBy(ctx context.Context, username string, page int) (*pagination.Page[*Post], error) {
	if strings.TrimSpace(username) == "" {
		return nil, NewValidationError("username", "required")
	}
	return s.page(ctx, ListFilter{CommentedBy: username}, page)
}

// page runs the slice query and the total count concurrently
func (s *postService) page(ctx context.Context, filter ListFilter, page int) (*pagination.Page[*Post], error) {
	req := pagination.Normalize(page, s.perPage, s.perPage, maxPerPage)

	var (
		items []*Post
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.List(gctx, filter, req.Limit(), req.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to list posts", "error", err, "page", req.Page)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return pagination.NewPage(items, total, req), nil
}

func (s *postService) resolveCategory(ctx context.Context, name string) (*categories.Category, error) {
	cat, err := s.categories.Resolve(ctx, name)
	if err != nil {
		if errors.Is(err, categories.ErrCategoryNotFound) {
			return nil, NewValidationError("category", fmt.Sprintf("unknown category %q", name))
		}
		return nil, err
	}
	return cat, nil
}

func isAllCategories(category string) bool {
	category = strings.TrimSpace(category)
	return category == "" || category == categories.All
}
