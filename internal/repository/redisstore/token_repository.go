// Package redisstore keeps auth state in Redis so every instance behind a
// load balancer sees the same revocations.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"notetaking-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "auth:revoked:"

type TokenRepository struct {
	rdb *redis.Client
}

func NewTokenRepository(rdb *redis.Client) contract.TokenRepository {
	return &TokenRepository{rdb: rdb}
}

// Connect accepts either a redis:// URL or a bare host:port and checks the
// server answers.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

func revokedKey(tokenID string) string {
	return revokedKeyPrefix + tokenID
}

func (r *TokenRepository) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
}

func (r *TokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
