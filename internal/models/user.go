package models

import "time"

// User represents a registered account.
type User struct {
	UserID       string    `json:"userid"`   // login id chosen at signup, unique
	Username     string    `json:"username"` // display name
	PasswordHash string    `json:"-"`        // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at"`
}
