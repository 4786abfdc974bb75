package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/storage"
)

// CreatePost allocates the next post id from the counter row, inserts
// the post and its zeroed engagement record, all in one transaction.
// Doing these as separate writes would let two concurrent writers
// allocate the same id.
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storeErr("failed to begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var totalPost int64
	err = tx.QueryRowContext(ctx,
		`SELECT total_post FROM counter WHERE name = 'counter'`,
	).Scan(&totalPost)
	if err != nil {
		return 0, storeErr("failed to read counter", err)
	}

	postID := totalPost + 1

	_, err = tx.ExecContext(ctx, `
		INSERT INTO posts (id, title, content, create_at_date, userid, username, post_img_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		postID,
		post.Title,
		post.Content,
		post.CreateAtDate,
		post.UserID,
		post.Username,
		post.PostImgPath,
	)
	if err != nil {
		return 0, storeErr("failed to insert post", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE counter SET total_post = total_post + 1 WHERE name = 'counter'`,
	)
	if err != nil {
		return 0, storeErr("failed to increment counter", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO engagements (post_id, like_total) VALUES (?, 0)`,
		postID,
	)
	if err != nil {
		return 0, storeErr("failed to insert engagement record", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storeErr("failed to commit post creation", err)
	}

	post.ID = postID
	return postID, nil
}

// GetPost retrieves a post by id
func (s *Storage) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	query := `
		SELECT id, title, content, create_at_date, userid, username, post_img_path
		FROM posts
		WHERE id = ?
	`

	post := &models.Post{}

	err := s.db.QueryRowContext(ctx, query, postID).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CreateAtDate,
		&post.UserID,
		&post.Username,
		&post.PostImgPath,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPostNotFound
		}
		return nil, storeErr("failed to get post", err)
	}

	return post, nil
}

// UpdatePost updates title, content and image path of a post
func (s *Storage) UpdatePost(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = ?, content = ?, post_img_path = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		post.Title,
		post.Content,
		post.PostImgPath,
		post.ID,
	)
	if err != nil {
		return storeErr("failed to update post", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeErr("failed to get rows affected", err)
	}

	if rows == 0 {
		return storage.ErrPostNotFound
	}

	return nil
}

// DeletePost deletes a post. The engagement record, like members and
// comments go with it via ON DELETE CASCADE.
func (s *Storage) DeletePost(ctx context.Context, postID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, postID)
	if err != nil {
		return storeErr("failed to delete post", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeErr("failed to get rows affected", err)
	}

	if rows == 0 {
		return storage.ErrPostNotFound
	}

	return nil
}

// ListPosts returns up to limit posts ordered by creation date
// descending, skipping the first skip posts. Ties on create_at_date
// are broken by id descending, so the ordering is total and stable
// across calls.
func (s *Storage) ListPosts(ctx context.Context, skip, limit int64) ([]*models.Post, error) {
	query := `
		SELECT id, title, content, create_at_date, userid, username, post_img_path
		FROM posts
		ORDER BY create_at_date DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, storeErr("failed to list posts", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListPostsByUser returns all posts by the given author, newest first
func (s *Storage) ListPostsByUser(ctx context.Context, userID string) ([]*models.Post, error) {
	query := `
		SELECT id, title, content, create_at_date, userid, username, post_img_path
		FROM posts
		WHERE userid = ?
		ORDER BY create_at_date DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, storeErr("failed to list posts by user", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]*models.Post, error) {
	posts := []*models.Post{}

	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.CreateAtDate,
			&post.UserID,
			&post.Username,
			&post.PostImgPath,
		); err != nil {
			return nil, storeErr("failed to scan post", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to iterate posts", err)
	}

	return posts, nil
}
