package bootstrap

import (
	"chat-login-client/internal/infra/notifier"
	"chat-login-client/internal/login"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		fx.Annotate(
			notifier.NewSlog,
			fx.As(new(login.Notifier)),
		),
		login.NewController,
	),
)
