package models

import "time"

// Post represents a published blog post.
// IDs are allocated sequentially from the counter row, so a higher ID
// always means a later insertion.
type Post struct {
	ID           int64     `json:"_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreateAtDate time.Time `json:"createAtDate"`
	UserID       string    `json:"userid"`   // author login id
	Username     string    `json:"username"` // author display name at publish time
	PostImgPath  string    `json:"postImgPath,omitempty"`
}

// Engagement is the per-post like record, created together with its
// post. LikeTotal always equals len(LikeMembers).
type Engagement struct {
	PostID      int64    `json:"post_id"`
	LikeTotal   int64    `json:"likeTotal"`
	LikeMembers []string `json:"likeMember"`
}

// Liked reports whether userID is a member of the like set.
func (e *Engagement) Liked(userID string) bool {
	for _, m := range e.LikeMembers {
		if m == userID {
			return true
		}
	}
	return false
}

// Comment represents a single comment on a post.
type Comment struct {
	ID           string    `json:"id"` // UUID
	PostID       int64     `json:"post_id"`
	Comment      string    `json:"comment"`
	CreateAtDate time.Time `json:"createAtDate"`
	UserID       string    `json:"userid"`
	Username     string    `json:"username"`
}
