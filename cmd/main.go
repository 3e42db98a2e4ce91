package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"chat-login-client/cmd/bootstrap"
	"chat-login-client/internal/infra/navigator"
	"chat-login-client/internal/login"
	"chat-login-client/internal/pkg/errs"

	"go.uber.org/fx"
)

// session holds the one piece of screen state the CLI owns: which screen is
// showing. The controller only ever moves it forward to /chat.
type session struct {
	route string
}

func newSession() *session {
	return &session{}
}

func newNavigator(sess *session) login.Navigator {
	return navigator.Func(func(path string) {
		sess.route = path
	})
}

func runLoginScreen(lc fx.Lifecycle, ctrl *login.Controller, sess *session, logger *slog.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("🔐 ログイン画面を起動します")
			go promptLoop(ctrl, sess, shutdowner)
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 クライアントを停止します")
			return nil
		},
	})
}

func promptLoop(ctrl *login.Controller, sess *session, shutdowner fx.Shutdowner) {
	reader := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	for sess.route != login.ChatRoute {
		fmt.Printf("--- %s ---\n", ctrl.SubmitLabel())

		fmt.Print("Username: ")
		username, err := reader.ReadString('\n')
		if err != nil {
			_ = shutdowner.Shutdown()
			return
		}

		fmt.Print("Password: ")
		password, err := reader.ReadString('\n')
		if err != nil {
			_ = shutdowner.Shutdown()
			return
		}

		ctrl.OnUsernameChange(strings.TrimRight(username, "\r\n"))
		ctrl.OnPasswordChange(strings.TrimRight(password, "\r\n"))
		ctrl.Submit(ctx)
	}

	fmt.Println("💬 チャット画面に移動しました")
	_ = shutdowner.Shutdown()
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			newSession,
			newNavigator,
		),
		fx.Invoke(
			runLoginScreen,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err, "stack", errs.ExtractStackLines(err, 5))
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	slog.Info("アプリケーションが正常に停止しました")
}
