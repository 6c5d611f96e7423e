package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// AccessToken is a freshly signed token together with the claims needed to track it.
type AccessToken struct {
	Token     string
	ID        string    // jti
	ExpiresAt time.Time // exp, at the precision encoded in the token
}

// TokenService defines the interface for issuing and validating bearer tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the given user.
	GenerateAccessToken(userID uuid.UUID) (*AccessToken, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
