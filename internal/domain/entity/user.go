// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account that signs in with email and password.
type User struct {
	ID           uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`     // Login identifier, always stored normalized.
	FirstName    string    `json:"firstName"` // The user's given name.
	LastName     string    `json:"lastName"`  // The user's family name.
	PasswordHash string    `json:"-"`         // Encoded bcrypt hash; the salt is embedded. Never the plaintext.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this user account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification to this user's data.
}

// WithoutCredentials returns a copy of the user with the password hash cleared.
func (u *User) WithoutCredentials() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.PasswordHash = ""

	return &clone
}

// NormalizeEmail is the single case policy for emails: surrounding space trimmed, lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
