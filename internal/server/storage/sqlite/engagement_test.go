package sqlite

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryukh1003/blog/internal/server/storage"
)

func TestEngagement_ToggleOnOff(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	postID := createTestPost(t, ctx, s, "likeable", time.Now())

	liked, total, err := s.ToggleLike(ctx, postID, "u1")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), total)

	eng, err := s.GetEngagement(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, eng.LikeMembers)

	liked, total, err = s.ToggleLike(ctx, postID, "u1")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), total)

	eng, err = s.GetEngagement(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, eng.LikeMembers)
}

func TestEngagement_ToggleIdempotencePairs(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	postID := createTestPost(t, ctx, s, "likeable", time.Now())

	// An even number of toggles returns to the original state.
	for i := 0; i < 6; i++ {
		_, _, err := s.ToggleLike(ctx, postID, "u1")
		require.NoError(t, err)
	}

	eng, err := s.GetEngagement(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), eng.LikeTotal)
	assert.Empty(t, eng.LikeMembers)

	// An odd number flips it.
	for i := 0; i < 3; i++ {
		_, _, err := s.ToggleLike(ctx, postID, "u1")
		require.NoError(t, err)
	}

	eng, err = s.GetEngagement(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), eng.LikeTotal)
	assert.Equal(t, []string{"u1"}, eng.LikeMembers)
}

func TestEngagement_TotalMatchesMembers(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	postID := createTestPost(t, ctx, s, "likeable", time.Now())

	users := []string{"u1", "u2", "u3", "u4"}
	for _, u := range users {
		_, _, err := s.ToggleLike(ctx, postID, u)
		require.NoError(t, err)
	}

	// Unlike half of them.
	_, _, err := s.ToggleLike(ctx, postID, "u2")
	require.NoError(t, err)
	_, _, err = s.ToggleLike(ctx, postID, "u4")
	require.NoError(t, err)

	eng, err := s.GetEngagement(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(len(eng.LikeMembers)), eng.LikeTotal)
	assert.ElementsMatch(t, []string{"u1", "u3"}, eng.LikeMembers)
}

func TestEngagement_ToggleMissingRecord(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, _, err := s.ToggleLike(ctx, 424242, "u1")
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestEngagement_ConcurrentTogglesDistinctUsers(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	postID := createTestPost(t, ctx, s, "popular", time.Now())

	const n = 16

	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := s.ToggleLike(ctx, postID, fmt.Sprintf("user%02d", i))
			errs <- err
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// Every toggle must be reflected, regardless of interleaving.
	eng, err := s.GetEngagement(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), eng.LikeTotal)
	assert.Len(t, eng.LikeMembers, n)
}

func TestEngagement_ConcurrentTogglesSameUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	postID := createTestPost(t, ctx, s, "contested", time.Now())

	const n = 8 // even count: must land back on not-liked

	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.ToggleLike(ctx, postID, "contender")
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	eng, err := s.GetEngagement(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), eng.LikeTotal)
	assert.Empty(t, eng.LikeMembers)
}
