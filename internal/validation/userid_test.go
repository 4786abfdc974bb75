package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{name: "valid simple", userID: "user1", wantErr: false},
		{name: "valid with underscore", userID: "some_user_01", wantErr: false},
		{name: "valid minimum length", userID: "abc", wantErr: false},
		{name: "valid maximum length", userID: strings.Repeat("a", 32), wantErr: false},
		{name: "empty", userID: "", wantErr: true},
		{name: "too short", userID: "ab", wantErr: true},
		{name: "too long", userID: strings.Repeat("a", 33), wantErr: true},
		{name: "contains space", userID: "user 1", wantErr: true},
		{name: "contains dash", userID: "user-1", wantErr: true},
		{name: "contains unicode", userID: "유저아이디", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserID(tt.userID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "longenough1", wantErr: false},
		{name: "exactly minimum", password: "12345678", wantErr: false},
		{name: "empty", password: "", wantErr: true},
		{name: "too short", password: "1234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
