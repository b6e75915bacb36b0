package helpers

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks revoked access tokens in Redis so logout takes effect
// before the token expires. With no Redis client configured every method is
// a no-op and tokens simply live out their TTL.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (ts *TokenStore) Enabled() bool {
	return ts != nil && ts.client != nil
}

func (ts *TokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if !ts.Enabled() {
		return nil
	}
	if ttl <= 0 {
		// Already expired; nothing to track.
		return nil
	}

	key := "revoked:" + HashToken(token)
	if err := ts.client.Set(ctx, key, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %v", err)
	}
	return nil
}

func (ts *TokenStore) IsRevoked(ctx context.Context, token string) bool {
	if !ts.Enabled() {
		return false
	}

	key := "revoked:" + HashToken(token)
	n, err := ts.client.Exists(ctx, key).Result()
	if err != nil {
		// Fail open: a cache outage must not lock everyone out.
		return false
	}
	return n > 0
}
