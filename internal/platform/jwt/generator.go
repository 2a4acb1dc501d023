// Package jwtmw provides JWT issuance, verification and the Gin middleware
// protecting authenticated routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid is returned when a token is malformed, carries a bad
	// signature or was signed with an unexpected algorithm.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned when a token's expiry instant has passed.
	ErrTokenExpired = errors.New("token has expired")
)

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed token for the given user and returns it
	// together with its lifetime in seconds.
	GenerateToken(userID string) (token string, expiresIn int64, err error)
}

// Verifier defines the interface for JWT token verification.
type Verifier interface {
	// VerifyToken validates the signature and expiry of a token and returns
	// the user ID it encodes.
	VerifyToken(token string) (userID string, err error)
}

// generator implements both Generator and Verifier with a shared
// symmetric secret held for the lifetime of the process.
type generator struct {
	secret     []byte
	expiration time.Duration
}

var (
	_ Generator = (*generator)(nil)
	_ Verifier  = (*generator)(nil)
)

// NewGenerator creates a new JWT generator with the provided secret and
// token lifetime.
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed HS256 token with standard claims.
// The expiry is stored as an absolute UTC instant, so verification is a
// single comparison against the current time.
func (g *generator) GenerateToken(userID string) (string, int64, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(g.expiration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, int64(g.expiration.Seconds()), nil
}

// VerifyToken parses and validates a token and extracts its subject.
func (g *generator) VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid {
		return "", ErrTokenInvalid
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
