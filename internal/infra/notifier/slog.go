package notifier

import (
	"context"
	"log/slog"

	"chat-login-client/internal/login"
)

// Slog renders notifications as structured log records: destructive
// notifications at warn level, everything else at info.
type Slog struct {
	logger *slog.Logger
}

func NewSlog(logger *slog.Logger) *Slog {
	return &Slog{logger: logger}
}

func (n *Slog) Notify(note login.Notification) {
	level := slog.LevelInfo
	if note.Variant == login.VariantDestructive {
		level = slog.LevelWarn
	}

	n.logger.Log(context.Background(), level, note.Title,
		"description", note.Description,
		"variant", string(note.Variant),
	)
}
