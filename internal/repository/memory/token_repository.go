package memory

import (
	"context"
	"time"

	"notetaking-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// TokenRepository remembers revoked access tokens until they would have
// expired anyway. State is per process.
type TokenRepository struct {
	cache *cache.Cache
}

func NewTokenRepository() contract.TokenRepository {
	// Purge expired entries every 10 minutes
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &TokenRepository{
		cache: c,
	}
}

func (r *TokenRepository) Revoke(_ context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	r.cache.Set(tokenID, true, ttl)
	return nil
}

func (r *TokenRepository) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, found := r.cache.Get(tokenID)
	return found, nil
}
