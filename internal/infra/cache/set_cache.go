package cache

import (
	"context"
	"time"

	"authgate/config"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// addUntilScript adds ARGV[2..] to KEYS[1] and raises its TTL to ARGV[1] ms
// unless the key already outlives that. PTTL is -1 for a key without expiry.
var addUntilScript = redis.NewScript(`
redis.call('SADD', KEYS[1], unpack(ARGV, 2))
local want = tonumber(ARGV[1])
local ttl = redis.call('PTTL', KEYS[1])
if ttl < want then
  redis.call('PEXPIRE', KEYS[1], want)
end
return 1
`)

// redisSetCache implements repository.SetCache with SADD / SISMEMBER / SCARD / SREM.
type redisSetCache struct {
	client    redis.Cmdable
	keyPrefix string
	now       func() time.Time
}

// NewSetCache is the Fx constructor; set names are namespaced with redis.keyPrefix.
func NewSetCache(client *redis.Client, cfg *config.Config) repository.SetCache {
	prefix := ""
	if cfg != nil && cfg.Redis != nil {
		prefix = cfg.Redis.KeyPrefix
	}

	return newSetCache(client, prefix)
}

func newSetCache(client redis.Cmdable, keyPrefix string) *redisSetCache {
	return &redisSetCache{client: client, keyPrefix: keyPrefix, now: time.Now}
}

func (c *redisSetCache) key(setName string) string {
	return c.keyPrefix + setName
}

// AddToSet adds members to the named set.
func (c *redisSetCache) AddToSet(ctx context.Context, setName string, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	args := make([]any, len(members))
	for i, m := range members {
		args[i] = m
	}

	if err := c.client.SAdd(ctx, c.key(setName), args...).Err(); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to add to set "+setName)
	}

	return nil
}

// AddToSetUntil adds members and extends the set's expiry to expiresAt when it would lapse sooner.
func (c *redisSetCache) AddToSetUntil(ctx context.Context, setName string, expiresAt time.Time, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	ttl := expiresAt.Sub(c.now()).Milliseconds()
	if ttl <= 0 {
		return nil
	}

	args := make([]any, 0, len(members)+1)
	args = append(args, ttl)
	for _, m := range members {
		args = append(args, m)
	}

	if err := addUntilScript.Run(ctx, c.client, []string{c.key(setName)}, args...).Err(); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to add to expiring set "+setName)
	}

	return nil
}

// IsMemberOfSet reports whether member is in the named set.
func (c *redisSetCache) IsMemberOfSet(ctx context.Context, setName, member string) (bool, error) {
	ok, err := c.client.SIsMember(ctx, c.key(setName), member).Result()
	if err != nil {
		return false, domainerrors.NewPersistenceError(err, "failed to check membership of set "+setName)
	}

	return ok, nil
}

// CountSetMembers returns the cardinality of the named set.
func (c *redisSetCache) CountSetMembers(ctx context.Context, setName string) (int64, error) {
	n, err := c.client.SCard(ctx, c.key(setName)).Result()
	if err != nil {
		return 0, domainerrors.NewPersistenceError(err, "failed to count set "+setName)
	}

	return n, nil
}

// RemoveMemberFromSet removes member from the named set.
func (c *redisSetCache) RemoveMemberFromSet(ctx context.Context, setName, member string) error {
	if err := c.client.SRem(ctx, c.key(setName), member).Err(); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to remove from set "+setName)
	}

	return nil
}
