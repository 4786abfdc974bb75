package storage

import (
	"context"

	"github.com/ryukh1003/blog/internal/models"
)

// EngagementStorage defines interface for like record persistence.
type EngagementStorage interface {
	// GetEngagement retrieves the like record for a post
	// Returns ErrPostNotFound if no record exists
	GetEngagement(ctx context.Context, postID int64) (*models.Engagement, error)

	// ToggleLike flips the (post, user) like state in one atomic
	// operation: the membership mutation and the matching counter
	// delta commit together, so like_total never drifts from the
	// member set under concurrent toggles.
	// Returns the resulting state and total.
	// Returns ErrPostNotFound if no like record exists for the post.
	ToggleLike(ctx context.Context, postID int64, userID string) (liked bool, likeTotal int64, err error)
}
