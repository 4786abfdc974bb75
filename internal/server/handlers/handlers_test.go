package handlers

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserStorage is an in-memory user store for handler tests.
type mockUserStorage struct {
	users map[string]*models.User
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(_ context.Context, user *models.User) error {
	if _, exists := m.users[user.UserID]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserStorage) GetUserByUserID(_ context.Context, userID string) (*models.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

// mockPostStorage is an in-memory post store for handler tests.
type mockPostStorage struct {
	posts     map[int64]*models.Post
	nextID    int64
	err       error
	updateErr error
	deleteErr error
}

func newMockPostStorage() *mockPostStorage {
	return &mockPostStorage{posts: make(map[int64]*models.Post)}
}

func (m *mockPostStorage) CreatePost(_ context.Context, post *models.Post) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	post.ID = m.nextID
	m.posts[post.ID] = post
	return post.ID, nil
}

func (m *mockPostStorage) GetPost(_ context.Context, postID int64) (*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	post, ok := m.posts[postID]
	if !ok {
		return nil, storage.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *mockPostStorage) UpdatePost(_ context.Context, post *models.Post) error {
	if m.err != nil {
		return m.err
	}
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.posts[post.ID]; !ok {
		return storage.ErrPostNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostStorage) DeletePost(_ context.Context, postID int64) error {
	if m.err != nil {
		return m.err
	}
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.posts[postID]; !ok {
		return storage.ErrPostNotFound
	}
	delete(m.posts, postID)
	return nil
}

func (m *mockPostStorage) ListPosts(_ context.Context, skip, limit int64) ([]*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}

	all := m.sorted()
	if skip >= int64(len(all)) {
		return nil, nil
	}
	end := skip + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[skip:end], nil
}

func (m *mockPostStorage) ListPostsByUser(_ context.Context, userID string) ([]*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}

	var posts []*models.Post
	for _, p := range m.sorted() {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (m *mockPostStorage) sorted() []*models.Post {
	all := make([]*models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreateAtDate.Equal(all[j].CreateAtDate) {
			return all[i].CreateAtDate.After(all[j].CreateAtDate)
		}
		return all[i].ID > all[j].ID
	})
	return all
}

// mockEngagementStorage returns a canned like record and toggle result.
type mockEngagementStorage struct {
	engagement *models.Engagement
	liked      bool
	likeTotal  int64
	err        error
}

func (m *mockEngagementStorage) GetEngagement(_ context.Context, postID int64) (*models.Engagement, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.engagement == nil {
		return &models.Engagement{PostID: postID, LikeMembers: []string{}}, nil
	}
	return m.engagement, nil
}

func (m *mockEngagementStorage) ToggleLike(_ context.Context, _ int64, _ string) (bool, int64, error) {
	if m.err != nil {
		return false, 0, m.err
	}
	return m.liked, m.likeTotal, nil
}

// mockCommentStorage is an in-memory comment store for handler tests.
type mockCommentStorage struct {
	comments []*models.Comment
	err      error
}

func (m *mockCommentStorage) CreateComment(_ context.Context, comment *models.Comment) error {
	if m.err != nil {
		return m.err
	}
	m.comments = append(m.comments, comment)
	return nil
}

func (m *mockCommentStorage) ListComments(_ context.Context, postID int64) ([]*models.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func testPost(id int64, title, userID string) *models.Post {
	return &models.Post{
		ID:           id,
		Title:        title,
		Content:      "content of " + title,
		CreateAtDate: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute),
		UserID:       userID,
		Username:     "user " + userID,
	}
}
