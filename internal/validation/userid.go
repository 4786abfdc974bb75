package validation

import (
	"fmt"
	"regexp"
)

// UserIDPattern defines the accepted login id format:
// latin letters, digits and underscore, 3-32 characters.
var UserIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUserIDLen is the minimum login id length
	MinUserIDLen = 3
	// MaxUserIDLen is the maximum login id length
	MaxUserIDLen = 32
)

// ValidateUserID checks that a login id matches the accepted format.
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("userid cannot be empty")
	}

	if len(userID) < MinUserIDLen {
		return fmt.Errorf("userid must be at least %d characters long", MinUserIDLen)
	}

	if len(userID) > MaxUserIDLen {
		return fmt.Errorf("userid must not exceed %d characters", MaxUserIDLen)
	}

	if !UserIDPattern.MatchString(userID) {
		return fmt.Errorf("userid can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword checks minimal password requirements.
func ValidatePassword(password string) error {
	const minPasswordLen = 8

	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}

	return nil
}
