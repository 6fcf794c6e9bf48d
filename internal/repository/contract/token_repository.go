package contract

import (
	"context"
	"time"
)

// TokenRepository is the revocation list for access tokens, keyed by jti.
type TokenRepository interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
