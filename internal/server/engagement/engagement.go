// Package engagement implements the per-post like toggle: an
// idempotent two-state machine per (post, user) pair with an
// aggregate counter kept consistent with the member set.
package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ryukh1003/blog/internal/server/auth"
	"github.com/ryukh1003/blog/internal/server/storage"
)

// Service flips like state for authenticated users.
type Service struct {
	logger *slog.Logger
	store  storage.EngagementStorage
}

// NewService creates an engagement service over the given storage.
func NewService(logger *slog.Logger, store storage.EngagementStorage) *Service {
	return &Service{
		logger: logger,
		store:  store,
	}
}

// Toggle flips the like state of the post for the authenticated user
// and returns the resulting state and total. Absence from the member
// set means not-liked; no per-user row is pre-created.
//
// The read-then-write runs as one atomic store operation, so two
// concurrent toggles for the same user cannot lose an update and the
// total cannot drift from the member count.
//
// Returns auth.ErrUnauthenticated for an anonymous caller and
// storage.ErrPostNotFound when the post has no like record. Every
// post gets one at creation, so a missing record is data corruption
// to report, not to retry.
func (s *Service) Toggle(ctx context.Context, postID int64, ac auth.Context) (bool, int64, error) {
	user, ok := ac.User()
	if !ok {
		return false, 0, auth.ErrUnauthenticated
	}

	liked, likeTotal, err := s.store.ToggleLike(ctx, postID, user.UserID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to toggle like: %w", err)
	}

	s.logger.DebugContext(ctx, "like toggled",
		slog.Int64("post_id", postID),
		slog.String("userid", user.UserID),
		slog.Bool("liked", liked),
		slog.Int64("like_total", likeTotal))

	return liked, likeTotal, nil
}
