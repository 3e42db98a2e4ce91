package login

import (
	"context"

	"chat-login-client/internal/domain/credentials"
)

const (
	submitLabelIdle       = "Login"
	submitLabelInProgress = "Logging in..."
)

// Controller owns the transient state of the login form and drives each
// submission through validate → authenticate → notify → navigate.
//
// It is confined to the UI goroutine: Submit suspends at the authenticator
// call and every state change happens on the calling goroutine, so there is
// no internal locking.
type Controller struct {
	authenticator Authenticator
	notifier      Notifier
	navigator     Navigator

	username   string
	password   string
	submitting bool
}

func NewController(authenticator Authenticator, notifier Notifier, navigator Navigator) *Controller {
	return &Controller{
		authenticator: authenticator,
		notifier:      notifier,
		navigator:     navigator,
	}
}

// OnUsernameChange replaces the username field. Validation is deferred to
// submit time.
func (c *Controller) OnUsernameChange(value string) {
	c.username = value
}

func (c *Controller) OnPasswordChange(value string) {
	c.password = value
}

// Submitting reports whether an authentication attempt is in flight. The
// submit affordance must be disabled while it returns true.
func (c *Controller) Submitting() bool {
	return c.submitting
}

func (c *Controller) SubmitLabel() string {
	if c.submitting {
		return submitLabelInProgress
	}
	return submitLabelIdle
}

// Submit runs a single submission. Every outcome is reported through the
// notifier (exactly one notification per invocation); errors are never
// rethrown to the caller. Calling Submit while a previous submission is
// still in flight is a no-op.
func (c *Controller) Submit(ctx context.Context) {
	if c.submitting {
		return
	}

	creds, err := credentials.New(c.username, c.password)
	if err != nil {
		c.notifier.Notify(Notification{
			Title:       "Validation Error",
			Description: "Please enter both username and password.",
			Variant:     VariantDestructive,
		})
		return
	}

	c.submitting = true
	err = c.authenticator.Login(ctx, creds)
	c.submitting = false

	if err != nil {
		c.notifier.Notify(Notification{
			Title:       "Login failed",
			Description: err.Error(),
			Variant:     VariantDestructive,
		})
		return
	}

	c.notifier.Notify(Notification{
		Title:       "Welcome back!",
		Description: "You have successfully logged in.",
	})
	c.navigator.GoTo(ChatRoute)
}
