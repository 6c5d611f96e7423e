// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Salt and hash come back as one value.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. Any failure, including a malformed hash, is false.
	Check(password, hash string) bool
}
