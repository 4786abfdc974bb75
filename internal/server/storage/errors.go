package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this userid already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrPostNotFound indicates that post was not found in storage.
	// From EngagementStorage it also covers a missing like record,
	// which is a data-integrity violation: every post gets one at
	// creation.
	ErrPostNotFound = errors.New("post not found")

	// ErrTimeout indicates that a store operation exceeded its deadline
	ErrTimeout = errors.New("store operation timed out")
)
