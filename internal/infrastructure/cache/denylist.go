package cache

import (
	"context"
	"time"
)

// Store is the key-value contract shared by MemoryStore and RedisStore
type Store interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)

const revokedKeyPrefix = "revoked:"

// TokenDenylist records revoked access tokens by digest until they would have expired anyway
type TokenDenylist struct {
	store Store
}

// NewTokenDenylist creates a denylist on top of store
func NewTokenDenylist(store Store) *TokenDenylist {
	return &TokenDenylist{store: store}
}

// Revoke marks the token digest as revoked for ttl. A non-positive ttl is a no-op.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.store.Set(ctx, revokedKeyPrefix+tokenHash, "1", ttl)
}

// IsRevoked reports whether the token digest was revoked
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	_, ok, err := d.store.Get(ctx, revokedKeyPrefix+tokenHash)
	return ok, err
}

// Close releases the underlying store
func (d *TokenDenylist) Close() error {
	return d.store.Close()
}
