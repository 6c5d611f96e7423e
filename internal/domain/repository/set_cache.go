package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Set name roots shared by the session bookkeeping.
const (
	SetRevokedTokens = "revoked_tokens"
	SetSignedInUsers = "signed_in_users"

	// RevokedBucketWidth is the span of token expiries grouped into one revocation set.
	RevokedBucketWidth = time.Hour
)

// RevokedTokensSet names the revocation set for tokens expiring at expiresAt,
// and returns when that set may be dropped: every token in it has expired by then.
func RevokedTokensSet(expiresAt time.Time) (string, time.Time) {
	start := expiresAt.UTC().Truncate(RevokedBucketWidth)

	return SetRevokedTokens + ":" + strconv.FormatInt(start.Unix(), 10), start.Add(RevokedBucketWidth)
}

// SignedInTokensSet names the set of live token IDs issued to a user.
func SignedInTokensSet(userID uuid.UUID) string {
	return SetSignedInUsers + ":" + userID.String()
}

// SetCache is a membership store keyed by set name.
type SetCache interface {
	// AddToSet adds members to the named set; members already present are ignored.
	AddToSet(ctx context.Context, setName string, members ...string) error

	// AddToSetUntil adds members and keeps the set alive at least until expiresAt.
	// The set's expiry is only ever pushed later, never shortened.
	// An expiresAt in the past adds nothing.
	AddToSetUntil(ctx context.Context, setName string, expiresAt time.Time, members ...string) error

	// IsMemberOfSet reports whether member belongs to the named set.
	IsMemberOfSet(ctx context.Context, setName, member string) (bool, error)

	// CountSetMembers returns the size of the named set; a missing set is empty.
	CountSetMembers(ctx context.Context, setName string) (int64, error)

	// RemoveMemberFromSet removes member from the named set. Removing an absent member is not an error.
	RemoveMemberFromSet(ctx context.Context, setName, member string) error
}
