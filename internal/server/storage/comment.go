package storage

import (
	"context"

	"github.com/ryukh1003/blog/internal/models"
)

// CommentStorage defines interface for comment persistence
type CommentStorage interface {
	// CreateComment stores a new comment
	// Returns ErrPostNotFound if the target post doesn't exist
	CreateComment(ctx context.Context, comment *models.Comment) error

	// ListComments returns all comments of a post, newest first
	ListComments(ctx context.Context, postID int64) ([]*models.Comment, error)
}
