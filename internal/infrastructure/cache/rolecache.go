package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"helioscale/internal/shared/authorization"
)

// ErrRoleNotCached is returned on a cache miss.
var ErrRoleNotCached = errors.New("role flags not cached")

// RoleCache is a short-lived server-side cache of account role flags.
// The role gate consults it on the denial path instead of hitting the
// credential store on every stale-token request; promotion and
// demotion invalidate the entry so downgrades take effect within one
// TTL at most.
type RoleCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRoleCache creates a RoleCache. A TTL around a minute keeps the
// staleness window small without hammering the store.
func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RoleCache{
		client: client,
		prefix: "auth:roles:",
		ttl:    ttl,
	}
}

func (c *RoleCache) Get(ctx context.Context, accountID uint) (*authorization.RoleFlags, error) {
	data, err := c.client.Get(ctx, c.buildKey(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoleNotCached
		}
		return nil, fmt.Errorf("failed to read role cache: %w", err)
	}

	var flags authorization.RoleFlags
	if err := json.Unmarshal(data, &flags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached role flags: %w", err)
	}

	return &flags, nil
}

func (c *RoleCache) Set(ctx context.Context, accountID uint, flags authorization.RoleFlags) error {
	data, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("failed to marshal role flags: %w", err)
	}

	if err := c.client.Set(ctx, c.buildKey(accountID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write role cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached entry. Called whenever an account's role
// flags change.
func (c *RoleCache) Invalidate(ctx context.Context, accountID uint) error {
	if err := c.client.Del(ctx, c.buildKey(accountID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate role cache: %w", err)
	}
	return nil
}

func (c *RoleCache) buildKey(accountID uint) string {
	return fmt.Sprintf("%s%d", c.prefix, accountID)
}
