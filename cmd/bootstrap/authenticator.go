package bootstrap

import (
	"log/slog"

	"chat-login-client/internal/infra/authclient"
	"chat-login-client/internal/login"
	"chat-login-client/internal/pkg/clock"
	"chat-login-client/internal/pkg/config"
	"chat-login-client/internal/pkg/jwt"

	"go.uber.org/fx"
)

var AuthenticatorModule = fx.Module("authenticator",
	fx.Provide(
		clock.NewRealClock,
		NewJWTService,
		NewAuthenticator,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL, clk)
}

func NewAuthenticator(cfg config.Config, jwtService *jwt.Service, logger *slog.Logger) login.Authenticator {
	switch cfg.Auth.Mode {
	case config.AuthModeLocal:
		logger.Info("ローカル認証モードで起動します", "users", len(cfg.Auth.LocalUsers))
		return authclient.NewLocal(cfg.Auth, jwtService)
	default:
		logger.Info("HTTP認証モードで起動します", "base_url", cfg.Auth.BaseURL)
		return authclient.NewHTTP(cfg.Auth, logger)
	}
}
