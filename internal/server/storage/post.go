package storage

import (
	"context"

	"github.com/ryukh1003/blog/internal/models"
)

// PostStorage defines interface for post persistence
type PostStorage interface {
	// CreatePost allocates the next post id from the counter row,
	// inserts the post and its zeroed engagement record in a single
	// transaction, and returns the allocated id.
	CreatePost(ctx context.Context, post *models.Post) (int64, error)

	// GetPost retrieves a post by id
	// Returns ErrPostNotFound if the post doesn't exist
	GetPost(ctx context.Context, postID int64) (*models.Post, error)

	// UpdatePost updates title, content and image path of a post
	// Returns ErrPostNotFound if the post doesn't exist
	UpdatePost(ctx context.Context, post *models.Post) error

	// DeletePost deletes a post together with its engagement record
	// and comments
	// Returns ErrPostNotFound if the post doesn't exist
	DeletePost(ctx context.Context, postID int64) error

	// ListPosts returns up to limit posts ordered by creation date
	// descending (ties broken by id descending), skipping the first
	// skip posts of that ordering
	ListPosts(ctx context.Context, skip, limit int64) ([]*models.Post, error)

	// ListPostsByUser returns all posts by the given author, newest first
	ListPostsByUser(ctx context.Context, userID string) ([]*models.Post, error)
}
