package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"chat-login-client/internal/domain/credentials"
	"chat-login-client/internal/pkg/config"
	"chat-login-client/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLoginRequestFailed = errs.New("login request failed")

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type loginResponse struct {
	AccessToken string   `json:"access_token"`
	User        UserView `json:"user"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Session is the outcome of the last successful login. It lives only in
// process memory; nothing is persisted.
type Session struct {
	AccessToken string
	User        UserView
}

// HTTP submits credentials to the auth service's login endpoint.
type HTTP struct {
	loginURL string
	client   *http.Client
	logger   *slog.Logger

	mu      sync.Mutex
	session *Session
}

func NewHTTP(cfg config.AuthConfig, logger *slog.Logger) *HTTP {
	return &HTTP{
		loginURL: cfg.LoginURL(),
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

func (a *HTTP) Login(ctx context.Context, creds credentials.Credentials) error {
	body, err := json.Marshal(loginRequest{
		Username: creds.Username().Value(),
		Password: creds.Password().Value(),
	})
	if err != nil {
		return errs.Mark(err, ErrLoginRequestFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.loginURL, bytes.NewReader(body))
	if err != nil {
		return errs.Mark(err, ErrLoginRequestFailed)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Warn("login request failed", "url", a.loginURL, "error", err.Error())
		return errs.Mark(errs.New("authentication service is unreachable"), ErrLoginRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return rejectionError(resp)
	}

	var success loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&success); err != nil {
		return errs.Mark(errs.New("authentication service returned a malformed response"), ErrLoginRequestFailed)
	}

	a.mu.Lock()
	a.session = &Session{AccessToken: success.AccessToken, User: success.User}
	a.mu.Unlock()

	return nil
}

// Session returns the in-memory session from the last successful login, or
// nil before one happened.
func (a *HTTP) Session() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// rejectionError carries the server's message verbatim; the controller shows
// it to the user unmodified.
func rejectionError(resp *http.Response) error {
	var envelope errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		return errs.New(envelope.Error.Message)
	}
	return errs.New(http.StatusText(resp.StatusCode))
}
