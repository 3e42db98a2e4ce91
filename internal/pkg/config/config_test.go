//go:build unit

package config_test

import (
	"testing"
	"time"

	"chat-login-client/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("環境変数なしでデフォルト値が読み込まれる", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, config.AuthModeHTTP, cfg.Auth.Mode)
		assert.Equal(t, 10*time.Second, cfg.Auth.Timeout)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("環境変数で上書きできる", func(t *testing.T) {
		t.Setenv("AUTH_BASE_URL", "http://auth.example.com:9000")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "http://auth.example.com:9000/api/auth/login", cfg.Auth.LoginURL())
	})

	t.Run("不正な値はエラーになる", func(t *testing.T) {
		t.Setenv("AUTH_TIMEOUT", "not-a-duration")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to process env config")
	})
}
