//go:build unit

package authclient_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chat-login-client/internal/infra/authclient"
	"chat-login-client/internal/pkg/config"
	"chat-login-client/tests/common/authstub"
	"chat-login-client/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHTTPAuthenticator(baseURL string) *authclient.HTTP {
	return authclient.NewHTTP(config.AuthConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}, slog.New(slog.DiscardHandler))
}

func TestHTTPLogin(t *testing.T) {
	t.Run("success: resolves and keeps the session in memory", func(t *testing.T) {
		user := builder.NewUserBuilder().BuildStub(t)
		srv := authstub.New(t, user).Start(t)
		auth := newHTTPAuthenticator(srv.URL)

		creds, err := builder.NewLoginFormBuilder().BuildDomain()
		require.NoError(t, err)

		err = auth.Login(context.Background(), creds)
		require.NoError(t, err)

		session := auth.Session()
		require.NotNil(t, session)
		assert.NotEmpty(t, session.AccessToken)
		assert.Equal(t, user.ID, session.User.ID)
		assert.Equal(t, "testuser", session.User.Username)
	})

	t.Run("rejection: server message is carried verbatim", func(t *testing.T) {
		user := builder.NewUserBuilder().BuildStub(t)
		srv := authstub.New(t, user).Start(t)
		auth := newHTTPAuthenticator(srv.URL)

		creds, err := builder.NewLoginFormBuilder().WithPassword("wrongpassword").BuildDomain()
		require.NoError(t, err)

		err = auth.Login(context.Background(), creds)
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())
		assert.Nil(t, auth.Session())
	})

	t.Run("rejection: unknown user gets the same message", func(t *testing.T) {
		srv := authstub.New(t).Start(t)
		auth := newHTTPAuthenticator(srv.URL)

		creds, err := builder.NewLoginFormBuilder().BuildDomain()
		require.NoError(t, err)

		err = auth.Login(context.Background(), creds)
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("rejection without an error envelope falls back to the status text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("upstream exploded"))
		}))
		t.Cleanup(srv.Close)
		auth := newHTTPAuthenticator(srv.URL)

		creds, err := builder.NewLoginFormBuilder().BuildDomain()
		require.NoError(t, err)

		err = auth.Login(context.Background(), creds)
		require.Error(t, err)
		assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), err.Error())
	})

	t.Run("transport failure is converted to a readable rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // connection refused from here on
		auth := newHTTPAuthenticator(srv.URL)

		creds, err := builder.NewLoginFormBuilder().BuildDomain()
		require.NoError(t, err)

		err = auth.Login(context.Background(), creds)
		require.Error(t, err)
		assert.ErrorIs(t, err, authclient.ErrLoginRequestFailed)
		assert.Equal(t, "authentication service is unreachable", err.Error())
	})

	t.Run("malformed success body is converted to a readable rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		t.Cleanup(srv.Close)
		auth := newHTTPAuthenticator(srv.URL)

		creds, err := builder.NewLoginFormBuilder().BuildDomain()
		require.NoError(t, err)

		err = auth.Login(context.Background(), creds)
		require.Error(t, err)
		assert.ErrorIs(t, err, authclient.ErrLoginRequestFailed)
		assert.Equal(t, "authentication service returned a malformed response", err.Error())
	})
}
