package auth

import (
	"strings"
	"testing"

	"authgate/config"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("myPassword")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "myPassword", hash)
	assert.NotContains(t, hash, "myPassword")

	// Verify the hash can be checked
	assert.True(t, hasher.Check("myPassword", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("myPassword")
	require.NoError(t, err)
	second, err := hasher.Hash("myPassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("myPassword", first))
	assert.True(t, hasher.Check("myPassword", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "myPassword"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// One character short
	assert.False(t, hasher.Check("myPasswor", hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_RoundTripAcrossInputs(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	inputs := []string{"a", "myPassword", "Pässphräse123!", " spaced out ", strings.Repeat("x", 72)}

	for i, p := range inputs {
		hash, err := hasher.Hash(p)
		require.NoError(t, err, p)
		assert.True(t, hasher.Check(p, hash), p)

		other := inputs[(i+1)%len(inputs)]
		assert.False(t, hasher.Check(other, hash), "%q must not verify against hash of %q", other, p)
	}
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBcryptHasher_WithConfigCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: customCost}})

	hash, err := hasher.Hash("myPassword")
	require.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_CostIsClamped(t *testing.T) {
	hasher := NewBcryptHasherWithCost(1)

	hash, err := hasher.Hash("myPassword")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
