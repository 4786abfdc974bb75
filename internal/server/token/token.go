// Package token implements the session token codec: a compact signed
// credential carrying the user's login id, verified statelessly on
// every request.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret indicates that the codec was constructed without a
	// signing secret. Fatal at startup.
	ErrNoSecret = errors.New("token: signing secret is not configured")

	// ErrInvalidToken indicates a malformed token, a signature
	// mismatch, or an expired token.
	ErrInvalidToken = errors.New("token: invalid token")
)

// Claims are the session token claims. Only the login id is carried;
// everything else about the user is resolved per request.
type Claims struct {
	UserID string `json:"userid"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with HMAC-SHA256.
type Codec struct {
	secret []byte
}

// NewCodec creates a token codec. Returns ErrNoSecret when secret is
// empty: without it tokens can neither be issued nor checked.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Sign issues a token asserting the given login id.
//
// Tokens carry no expiry, matching the cookies already in circulation;
// Verify honors an exp claim if one is ever added at issuance.
func (c *Codec) Sign(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "blog",
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and returns the asserted login id.
// All failure modes collapse into ErrInvalidToken; callers only need
// to know the token cannot be trusted.
func (c *Codec) Verify(tokenString string) (string, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
