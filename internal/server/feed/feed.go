// Package feed implements deterministic skip-based slicing of the
// post collection ordered by creation time descending.
package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/storage"
)

const (
	// HeroLimit is the number of posts the landing view shows.
	HeroLimit = 6

	// HeroSkip is the offset paged requests start from. It is one
	// more than HeroLimit, so the 7th-ranked post appears on neither
	// the hero view nor page 1. Existing clients page against these
	// boundaries; changing the constant would shift every page.
	HeroSkip = 7

	// PageSize is the number of posts per page after the hero view.
	PageSize = 3
)

// Service produces feed slices. Calls are read-only and keep no state
// between them; a page can be re-fetched at any time.
type Service struct {
	logger *slog.Logger
	posts  storage.PostStorage
}

// NewService creates a feed paginator over the given post storage.
func NewService(logger *slog.Logger, posts storage.PostStorage) *Service {
	return &Service{
		logger: logger,
		posts:  posts,
	}
}

// Hero returns the fixed first slice of the feed for the landing view.
func (s *Service) Hero(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.posts.ListPosts(ctx, 0, HeroLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load hero posts: %w", err)
	}
	return posts, nil
}

// Page returns up to PageSize posts for the given page number.
// Pages below 1 read as page 1; pages past the end return an empty
// slice, never an error.
func (s *Service) Page(ctx context.Context, page int64) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}

	// The skip multiplication can wrap for page numbers near the int64
	// ceiling. A wrapped skip is negative, which SQLite reads as offset
	// zero; such a page is far past the end and must read as empty.
	skip := HeroSkip + (page-1)*PageSize
	if skip < 0 {
		return []*models.Post{}, nil
	}

	posts, err := s.posts.ListPosts(ctx, skip, PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", page, err)
	}

	return posts, nil
}
