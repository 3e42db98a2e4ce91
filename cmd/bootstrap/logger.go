package bootstrap

import (
	"log/slog"

	"chat-login-client/internal/pkg/config"
	"chat-login-client/internal/pkg/logging"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Log).GetSlogLogger()
}
