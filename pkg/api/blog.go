// Package api defines the JSON request and response shapes exchanged
// with the presentation layer.
package api

import "github.com/ryukh1003/blog/internal/models"

// SignupRequest represents a new account registration.
type SignupRequest struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
	Password string `json:"pw"`
}

// SignupResponse confirms a successful registration.
type SignupResponse struct {
	UserID  string `json:"userid"`
	Message string `json:"message"`
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"pw"`
}

// LoginResponse confirms a successful login. The session token itself
// travels in the cookie, not in the body.
type LoginResponse struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
}

// WriteRequest represents a new post submission.
type WriteRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	PostImgPath string `json:"postImgPath,omitempty"`
}

// EditRequest represents an update to an existing post.
type EditRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	PostImgPath string `json:"postImgPath,omitempty"`
}

// PostResponse wraps a created or updated post.
type PostResponse struct {
	Post *models.Post `json:"post"`
}

// DetailResponse is the detail page payload: the post, its like
// record and its comments, newest first.
type DetailResponse struct {
	Post     *models.Post       `json:"posts"`
	Like     *models.Engagement `json:"like"`
	Comments []*models.Comment  `json:"comments"`
}

// CommentRequest represents a new comment on a post.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// CommentResponse confirms a stored comment.
type CommentResponse struct {
	Success bool            `json:"success"`
	Comment *models.Comment `json:"comment,omitempty"`
}

// LikeResponse reports the like state after a toggle.
type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeTotal int64 `json:"likeTotal"`
}

// ErrorResponse represents an error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
