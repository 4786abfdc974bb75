package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ryukh1003/blog/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage, userID string) {
	user := &models.User{
		UserID:       userID,
		Username:     "user " + userID,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)
}

func createTestPost(t *testing.T, ctx context.Context, s *Storage, title string, createAt time.Time) int64 {
	post := &models.Post{
		Title:        title,
		Content:      "content of " + title,
		CreateAtDate: createAt,
		UserID:       "author1",
		Username:     "Author One",
	}

	id, err := s.CreatePost(ctx, post)
	require.NoError(t, err)

	return id
}
