// Package auth implements the credential store: registration with
// salted slow hashing and login verification against stored hashes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/storage"
)

// BcryptCost is the bcrypt work factor applied at registration.
const BcryptCost = 10

// Typed failures surfaced to handlers. Not-found and bad-password stay
// distinguishable: the existing front end maps them to different
// status codes.
var (
	// ErrDuplicateUser indicates the login id is already taken
	ErrDuplicateUser = errors.New("auth: userid already taken")

	// ErrUserNotFound indicates no account exists for the login id
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrBadPassword indicates the password did not match
	ErrBadPassword = errors.New("auth: wrong password")

	// ErrUnauthenticated indicates an operation that requires a
	// signed-in user was attempted anonymously
	ErrUnauthenticated = errors.New("auth: authentication required")
)

// Service verifies user identity against stored password hashes.
type Service struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewService creates a credential store over the given user storage.
func NewService(logger *slog.Logger, users storage.UserStorage) *Service {
	return &Service{
		logger: logger,
		users:  users,
	}
}

// Register hashes the password with bcrypt and persists the new
// account. The plaintext is never stored or logged.
// Returns ErrDuplicateUser if the login id is taken.
func (s *Service) Register(ctx context.Context, userID, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserID:       userID,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("userid", userID))

	return user, nil
}

// Authenticate looks up the account and compares the password against
// the stored hash. bcrypt's comparison is constant-time over the hash.
// Returns ErrUserNotFound for an unknown login id and ErrBadPassword
// for a mismatch.
func (s *Service) Authenticate(ctx context.Context, userID, password string) (*models.User, error) {
	user, err := s.users.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadPassword
	}

	return user, nil
}

// Lookup is the read path used by the session middleware to resolve a
// verified token's login id into a live account.
// Returns ErrUserNotFound if the account no longer exists.
func (s *Service) Lookup(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
