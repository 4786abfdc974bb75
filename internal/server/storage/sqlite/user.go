package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (userid, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.UserID,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrUserAlreadyExists
		}
		return storeErr("failed to insert user", err)
	}

	return nil
}

// GetUserByUserID retrieves user by login id
func (s *Storage) GetUserByUserID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT userid, username, password_hash, created_at
		FROM users
		WHERE userid = ?
	`

	user := &models.User{}

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, storeErr("failed to get user", err)
	}

	return user, nil
}
