package context

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyIdentity is the echo context key for the authenticated caller.
const KeyIdentity ContextKey = "identity"

// Identity is what the auth middleware learned from a verified bearer token.
type Identity struct {
	UserID    uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}

// SetIdentity stores the authenticated caller on the echo context.
func SetIdentity(c echo.Context, identity *Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the authenticated caller, if any.
func GetIdentity(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}

	return identity, true
}
