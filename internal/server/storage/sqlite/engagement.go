package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/storage"
)

// GetEngagement retrieves the like record for a post
func (s *Storage) GetEngagement(ctx context.Context, postID int64) (*models.Engagement, error) {
	eng := &models.Engagement{PostID: postID, LikeMembers: []string{}}

	err := s.db.QueryRowContext(ctx,
		`SELECT like_total FROM engagements WHERE post_id = ?`, postID,
	).Scan(&eng.LikeTotal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPostNotFound
		}
		return nil, storeErr("failed to get engagement", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id FROM like_members WHERE post_id = ? ORDER BY rowid`, postID,
	)
	if err != nil {
		return nil, storeErr("failed to list like members", err)
	}
	defer rows.Close()

	for rows.Next() {
		var member string
		if err := rows.Scan(&member); err != nil {
			return nil, storeErr("failed to scan like member", err)
		}
		eng.LikeMembers = append(eng.LikeMembers, member)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to iterate like members", err)
	}

	return eng, nil
}

// ToggleLike flips the (post, user) like state. The membership
// mutation and the counter delta commit in one transaction, so
// like_total always equals the member count regardless of how
// concurrent toggles interleave. The CHECK (like_total >= 0)
// constraint backstops the invariant at the schema level.
func (s *Storage) ToggleLike(ctx context.Context, postID int64, userID string) (bool, int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, storeErr("failed to begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	// A missing record means the post was created without one, which
	// is a data-integrity violation, not a retryable condition.
	var likeTotal int64
	err = tx.QueryRowContext(ctx,
		`SELECT like_total FROM engagements WHERE post_id = ?`, postID,
	).Scan(&likeTotal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, 0, storage.ErrPostNotFound
		}
		return false, 0, storeErr("failed to read engagement", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM like_members WHERE post_id = ? AND user_id = ?`,
		postID, userID,
	)
	if err != nil {
		return false, 0, storeErr("failed to remove like member", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, 0, storeErr("failed to get rows affected", err)
	}

	var liked bool
	if removed > 0 {
		_, err = tx.ExecContext(ctx,
			`UPDATE engagements SET like_total = like_total - 1 WHERE post_id = ?`,
			postID,
		)
		liked = false
	} else {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO like_members (post_id, user_id) VALUES (?, ?)`,
			postID, userID,
		); err == nil {
			_, err = tx.ExecContext(ctx,
				`UPDATE engagements SET like_total = like_total + 1 WHERE post_id = ?`,
				postID,
			)
		}
		liked = true
	}
	if err != nil {
		return false, 0, storeErr("failed to toggle like", err)
	}

	err = tx.QueryRowContext(ctx,
		`SELECT like_total FROM engagements WHERE post_id = ?`, postID,
	).Scan(&likeTotal)
	if err != nil {
		return false, 0, storeErr("failed to read like total", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, storeErr("failed to commit toggle", err)
	}

	return liked, likeTotal, nil
}
