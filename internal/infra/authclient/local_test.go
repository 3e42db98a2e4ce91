//go:build unit

package authclient_test

import (
	"context"
	"testing"
	"time"

	"chat-login-client/internal/infra/authclient"
	"chat-login-client/internal/pkg/clock"
	"chat-login-client/internal/pkg/config"
	"chat-login-client/internal/pkg/jwt"
	"chat-login-client/internal/pkg/password"
	"chat-login-client/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalAuthenticator(t *testing.T) (*authclient.Local, *jwt.Service) {
	t.Helper()

	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	auth := authclient.NewLocal(config.AuthConfig{
		LocalUsers: map[string]string{"testuser": hash},
	}, jwtService)

	return auth, jwtService
}

func TestLocalLogin(t *testing.T) {
	t.Run("success: seeded credentials resolve and mint a session token", func(t *testing.T) {
		auth, jwtService := newLocalAuthenticator(t)

		creds, err := builder.NewLoginFormBuilder().BuildDomain()
		require.NoError(t, err)

		err = auth.Login(context.Background(), creds)
		require.NoError(t, err)

		require.NotEmpty(t, auth.Token())
		claims, err := jwtService.ValidateToken(auth.Token())
		require.NoError(t, err)
		assert.Equal(t, "testuser", claims.Username)
	})

	t.Run("rejection: wrong password", func(t *testing.T) {
		auth, _ := newLocalAuthenticator(t)

		creds, err := builder.NewLoginFormBuilder().WithPassword("wrongpassword").BuildDomain()
		require.NoError(t, err)

		err = auth.Login(context.Background(), creds)
		require.Error(t, err)
		assert.ErrorIs(t, err, authclient.ErrInvalidCredentials)
		assert.Equal(t, "invalid credentials", err.Error())
		assert.Empty(t, auth.Token())
	})

	t.Run("rejection: unknown user is indistinguishable from wrong password", func(t *testing.T) {
		auth, _ := newLocalAuthenticator(t)

		creds, err := builder.NewLoginFormBuilder().WithUsername("nobody").BuildDomain()
		require.NoError(t, err)

		err = auth.Login(context.Background(), creds)
		require.Error(t, err)
		assert.ErrorIs(t, err, authclient.ErrInvalidCredentials)
		assert.Equal(t, "invalid credentials", err.Error())
	})
}
