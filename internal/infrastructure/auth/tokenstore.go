package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "auth:denylist:"

// RedisTokenStore keeps a denylist of revoked refresh tokens. Entries expire
// with the token itself so the set stays bounded.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return denylistKeyPrefix + hex.EncodeToString(sum[:])
}

// Revoke marks the token as unusable until it would have expired anyway.
func (s *RedisTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, tokenKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been revoked. Redis outages fail
// open so authentication keeps working without the denylist.
func (s *RedisTokenStore) IsRevoked(ctx context.Context, token string) bool {
	n, err := s.client.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false
	}
	return n > 0
}
