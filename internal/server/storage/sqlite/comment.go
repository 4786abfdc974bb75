package sqlite

import (
	"context"
	"strings"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/storage"
)

// CreateComment stores a new comment
func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, comment, create_at_date, userid, username)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		comment.ID,
		comment.PostID,
		comment.Comment,
		comment.CreateAtDate,
		comment.UserID,
		comment.Username,
	)

	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return storage.ErrPostNotFound
		}
		return storeErr("failed to insert comment", err)
	}

	return nil
}

// ListComments returns all comments of a post, newest first
func (s *Storage) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	query := `
		SELECT id, post_id, comment, create_at_date, userid, username
		FROM comments
		WHERE post_id = ?
		ORDER BY create_at_date DESC, rowid DESC
	`

	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, storeErr("failed to list comments", err)
	}
	defer rows.Close()

	comments := []*models.Comment{}

	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.Comment,
			&c.CreateAtDate,
			&c.UserID,
			&c.Username,
		); err != nil {
			return nil, storeErr("failed to scan comment", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to iterate comments", err)
	}

	return comments, nil
}
