package storage

import (
	"context"

	"github.com/ryukh1003/blog/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if the userid is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUserID retrieves user by login id
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUserID(ctx context.Context, userID string) (*models.User, error)
}
