package config

import (
	"fmt"
	"time"

	"chat-login-client/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (auth endpoint, secrets)
// - default: Values common across all environments (timeouts, log format)
// -----------------------------------------------------------------------------

const (
	AuthModeHTTP  = "http"
	AuthModeLocal = "local"
)

type Config struct {
	Auth AuthConfig
	Log  LogConfig
}

type AuthConfig struct {
	Mode    string        `envconfig:"AUTH_MODE" default:"http"`
	BaseURL string        `envconfig:"AUTH_BASE_URL" default:"http://localhost:8888"`
	Timeout time.Duration `envconfig:"AUTH_TIMEOUT" default:"10s"`

	// Local mode only: username to bcrypt hash pairs ("alice:$2a$...,bob:$2a$...")
	LocalUsers    map[string]string `envconfig:"AUTH_LOCAL_USERS"`
	SessionSecret string            `envconfig:"AUTH_SESSION_SECRET" default:"local-dev-secret"`
	SessionTTL    time.Duration     `envconfig:"AUTH_SESSION_TTL" default:"24h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"text"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

func (c *AuthConfig) LoginURL() string {
	return fmt.Sprintf("%s/api/auth/login", c.BaseURL)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Auth: AuthConfig{
			Mode:          AuthModeHTTP,
			BaseURL:       "http://localhost:18888", // Test port
			Timeout:       2 * time.Second,
			SessionSecret: "test-secret",
			SessionTTL:    time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
	}
}
