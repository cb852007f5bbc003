package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked-token:"

// TokenBlacklistRepo implements repository.TokenBlacklistRepository on Redis.
// Keys expire together with the token they revoke, so the set cleans itself.
type TokenBlacklistRepo struct {
	client redis.UniversalClient
}

// NewTokenBlacklistRepo creates a new Redis-backed token blacklist.
func NewTokenBlacklistRepo(client redis.UniversalClient) (*TokenBlacklistRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &TokenBlacklistRepo{client: client}, nil
}

// Revoke marks a JWT ID as revoked until its natural expiry.
func (r *TokenBlacklistRepo) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to revoke.
		return nil
	}
	if err := r.client.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a JWT ID has been revoked.
func (r *TokenBlacklistRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
