package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepositoryRevoke(t *testing.T) {
	repo := NewTokenRepository()
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "abc", time.Now().Add(time.Minute)))

	revoked, _ = repo.IsRevoked(ctx, "abc")
	assert.True(t, revoked)
	revoked, _ = repo.IsRevoked(ctx, "other")
	assert.False(t, revoked)
}

func TestTokenRepositoryIgnoresExpired(t *testing.T) {
	repo := NewTokenRepository()
	ctx := context.Background()

	require.NoError(t, repo.Revoke(ctx, "old", time.Now().Add(-time.Minute)))

	revoked, _ := repo.IsRevoked(ctx, "old")
	assert.False(t, revoked)
}
