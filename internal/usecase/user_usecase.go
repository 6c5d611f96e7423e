// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput is the raw sign-up request. Password is plaintext and is discarded after hashing.
type SignUpInput struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

// AuthenticateInput carries the credentials checked by Authenticate.
type AuthenticateInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created user, without credentials.
type SignUpOutput struct {
	User *entity.User `json:"user"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// SignUp validates, hashes, duplicate-checks and persists a new user.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// Authenticate returns the matching user without its hash, or nil when the
	// email is unknown or the password does not verify. Bad credentials are not an error.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*entity.User, error)

	// GetProfile loads a user by ID, without credentials.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
