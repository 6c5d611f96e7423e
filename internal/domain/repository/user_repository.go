// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Storage failures are reported as domain PersistenceError values.
type UserRepository interface {
	// FindByEmail returns every stored user whose email matches. An empty slice means none.
	FindByEmail(ctx context.Context, email string) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Save persists a new user, filling ID and timestamps on the passed entity.
	Save(ctx context.Context, user *entity.User) error
}
