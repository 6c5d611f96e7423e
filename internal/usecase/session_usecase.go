package usecase

import (
	"context"
	"time"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "Bearer"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        *entity.User `json:"user"`
}

// LogoutInput identifies the token being given up.
type LogoutInput struct {
	UserID    uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}

// SessionUsecase issues and revokes bearer tokens and tracks who is signed in.
// A user stays signed in while any of their tokens is live and not logged out.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	// IsRevoked looks the token up in the revocation bucket for its expiry.
	IsRevoked(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error)
	IsSignedIn(ctx context.Context, userID uuid.UUID) (bool, error)
}
