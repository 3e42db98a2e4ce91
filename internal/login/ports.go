package login

import (
	"context"

	"chat-login-client/internal/domain/credentials"
)

// ChatRoute is the fixed post-login destination.
const ChatRoute = "/chat"

type Variant string

const (
	VariantDefault     Variant = ""
	VariantDestructive Variant = "destructive"
)

// Notification is a transient user-facing feedback message.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Authenticator performs the actual credential verification. Session state
// (tokens, current identity) is entirely its concern.
type Authenticator interface {
	Login(ctx context.Context, creds credentials.Credentials) error
}

// Notifier renders transient feedback. Fire-and-forget: the controller never
// inspects a result.
type Notifier interface {
	Notify(n Notification)
}

// Navigator performs screen transitions. Fire-and-forget.
type Navigator interface {
	GoTo(path string)
}
