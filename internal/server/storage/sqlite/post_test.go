package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/storage"
)

func TestPostStorage_CreatePost_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()

	first := createTestPost(t, ctx, s, "first", now)
	second := createTestPost(t, ctx, s, "second", now)
	third := createTestPost(t, ctx, s, "third", now)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(3), third)
}

func TestPostStorage_CreatePost_PairsEngagementRecord(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	postID := createTestPost(t, ctx, s, "with likes", time.Now())

	eng, err := s.GetEngagement(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), eng.LikeTotal)
	assert.Empty(t, eng.LikeMembers)
}

func TestPostStorage_GetPost(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	postID := createTestPost(t, ctx, s, "findme", time.Now())

	post, err := s.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "findme", post.Title)
	assert.Equal(t, "author1", post.UserID)

	_, err = s.GetPost(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestPostStorage_UpdatePost(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	postID := createTestPost(t, ctx, s, "before", time.Now())

	post, err := s.GetPost(ctx, postID)
	require.NoError(t, err)

	post.Title = "after"
	post.Content = "updated content"
	post.PostImgPath = "/uploads/img.png"

	err = s.UpdatePost(ctx, post)
	require.NoError(t, err)

	got, err := s.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "updated content", got.Content)
	assert.Equal(t, "/uploads/img.png", got.PostImgPath)

	err = s.UpdatePost(ctx, &models.Post{ID: 9999, Title: "x", Content: "y"})
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestPostStorage_DeletePost_Cascades(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	postID := createTestPost(t, ctx, s, "doomed", time.Now())

	_, _, err := s.ToggleLike(ctx, postID, "liker1")
	require.NoError(t, err)

	comment := &models.Comment{
		ID:           "c1",
		PostID:       postID,
		Comment:      "soon gone",
		CreateAtDate: time.Now(),
		UserID:       "commenter1",
		Username:     "Commenter",
	}
	require.NoError(t, s.CreateComment(ctx, comment))

	err = s.DeletePost(ctx, postID)
	require.NoError(t, err)

	_, err = s.GetPost(ctx, postID)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)

	// The like record and comments go with the post.
	_, err = s.GetEngagement(ctx, postID)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)

	comments, err := s.ListComments(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	err = s.DeletePost(ctx, postID)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestPostStorage_ListPosts_OrderSkipLimit(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		createTestPost(t, ctx, s, titleFor(i+1), base.Add(time.Duration(i)*time.Minute))
	}

	// Newest first: P10 P9 ... P1.
	posts, err := s.ListPosts(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "P10", posts[0].Title)
	assert.Equal(t, "P9", posts[1].Title)
	assert.Equal(t, "P8", posts[2].Title)

	// Skip walks down the same ordering.
	posts, err = s.ListPosts(ctx, 7, 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "P3", posts[0].Title)
	assert.Equal(t, "P2", posts[1].Title)
	assert.Equal(t, "P1", posts[2].Title)

	// Past the end is empty, not an error.
	posts, err = s.ListPosts(ctx, 16, 3)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostStorage_ListPosts_TieBreakByID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Same second for all three; higher id (later insertion) wins.
	same := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	createTestPost(t, ctx, s, "P1", same)
	createTestPost(t, ctx, s, "P2", same)
	createTestPost(t, ctx, s, "P3", same)

	posts, err := s.ListPosts(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "P3", posts[0].Title)
	assert.Equal(t, "P2", posts[1].Title)
	assert.Equal(t, "P1", posts[2].Title)
}

func TestPostStorage_ListPostsByUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	old := &models.Post{
		Title: "old by bob", Content: "c", CreateAtDate: base,
		UserID: "bob01", Username: "Bob",
	}
	_, err := s.CreatePost(ctx, old)
	require.NoError(t, err)

	createTestPost(t, ctx, s, "by author1", base.Add(time.Minute))

	recent := &models.Post{
		Title: "new by bob", Content: "c", CreateAtDate: base.Add(2 * time.Minute),
		UserID: "bob01", Username: "Bob",
	}
	_, err = s.CreatePost(ctx, recent)
	require.NoError(t, err)

	posts, err := s.ListPostsByUser(ctx, "bob01")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new by bob", posts[0].Title)
	assert.Equal(t, "old by bob", posts[1].Title)
}

func titleFor(i int) string {
	return fmt.Sprintf("P%d", i)
}
