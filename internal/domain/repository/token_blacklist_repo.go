package repository

import (
	"context"
	"time"
)

// TokenBlacklistRepository stores revoked JWT IDs until their natural expiry.
// Backed by Redis so revocation survives restarts and is shared across
// instances.
type TokenBlacklistRepository interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
