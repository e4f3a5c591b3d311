package categories

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// resolverCacheSize bounds the name -> category cache. The seeded set is tiny;
// the bound only matters if rows are added by hand.
const resolverCacheSize = 64

type categoryService struct {
	repo   Repository
	cache  *lru.Cache[string, *Category]
	logger *slog.Logger
}

// NewService creates a category service that caches resolved names.
// Categories are immutable after seeding, so cached entries never go stale.
func NewService(repo Repository, logger *slog.Logger) (Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[string, *Category](resolverCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create category cache: %w", err)
	}
	return &categoryService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}, nil
}

func (s *categoryService) ListNames(ctx context.Context) ([]string, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
		s.cache.Add(c.Name, c)
	}
	return names, nil
}

func (s *categoryService) Resolve(ctx context.Context, name string) (*Category, error) {
	if cat, ok := s.cache.Get(name); ok {
		return cat, nil
	}

	cat, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if err == ErrCategoryNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve category %q: %w", name, err)
	}

	s.cache.Add(name, cat)
	return cat, nil
}
