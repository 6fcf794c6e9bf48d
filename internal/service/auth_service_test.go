package service

import (
	"context"
	"testing"
	"time"

	"notetaking-be/internal/dto"
	"notetaking-be/internal/pkg/logger"
	"notetaking-be/internal/repository/memory"
	"notetaking-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T, ttl time.Duration) IAuthService {
	t.Helper()

	db := newTestDB(t)
	return NewAuthService(unitofwork.NewRepositoryFactory(db), memory.NewTokenRepository(), testSecret, ttl, logger.NewNopLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newAuthService(t, time.Hour)
	ctx := context.Background()

	reg, err := auth.Register(ctx, &dto.RegisterRequest{Username: "author", Email: "author@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "author", reg.Username)

	_, err = auth.Register(ctx, &dto.RegisterRequest{Username: "author", Password: "password456"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = auth.Login(ctx, &dto.LoginRequest{Username: "author", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	login, err := auth.Login(ctx, &dto.LoginRequest{Username: "author", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, reg.Id, login.User.Id)
	assert.NotEmpty(t, login.AccessToken)
	assert.True(t, login.ExpiresAt.After(time.Now()))

	userId, err := auth.Authenticate(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.Id, userId)
}

func TestLogoutRevokesToken(t *testing.T) {
	auth := newAuthService(t, time.Hour)
	ctx := context.Background()

	_, err := auth.Register(ctx, &dto.RegisterRequest{Username: "author", Password: "password123"})
	require.NoError(t, err)
	login, err := auth.Login(ctx, &dto.LoginRequest{Username: "author", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, login.AccessToken))

	userId, err := auth.Authenticate(ctx, login.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, uuid.Nil, userId)

	// A second logout, or one with garbage, is harmless.
	assert.NoError(t, auth.Logout(ctx, login.AccessToken))
	assert.NoError(t, auth.Logout(ctx, "garbage"))
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("garbage", func(t *testing.T) {
		auth := newAuthService(t, time.Hour)
		_, err := auth.Authenticate(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		auth := newAuthService(t, -time.Minute)
		_, err := auth.Register(ctx, &dto.RegisterRequest{Username: "author", Password: "password123"})
		require.NoError(t, err)
		login, err := auth.Login(ctx, &dto.LoginRequest{Username: "author", Password: "password123"})
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, login.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("foreign secret", func(t *testing.T) {
		auth := newAuthService(t, time.Hour)
		_, err := auth.Register(ctx, &dto.RegisterRequest{Username: "author", Password: "password123"})
		require.NoError(t, err)

		other := NewAuthService(nil, memory.NewTokenRepository(), "other-secret", time.Hour, logger.NewNopLogger())
		_, err = other.Authenticate(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)

		login, err := auth.Login(ctx, &dto.LoginRequest{Username: "author", Password: "password123"})
		require.NoError(t, err)
		_, err = other.Authenticate(ctx, login.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
