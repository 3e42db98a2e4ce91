package authclient

import (
	"context"
	"sync"

	"chat-login-client/internal/domain/credentials"
	"chat-login-client/internal/pkg/config"
	"chat-login-client/internal/pkg/errs"
	"chat-login-client/internal/pkg/jwt"
	"chat-login-client/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("session token generation failed")
)

// Local verifies credentials against a seeded username to bcrypt-hash table.
// Intended for offline development; the minted session token never leaves
// process memory.
type Local struct {
	users      map[string]string
	jwtService *jwt.Service

	mu    sync.Mutex
	token string
}

func NewLocal(cfg config.AuthConfig, jwtService *jwt.Service) *Local {
	users := make(map[string]string, len(cfg.LocalUsers))
	for name, hash := range cfg.LocalUsers {
		users[name] = hash
	}
	return &Local{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *Local) Login(_ context.Context, creds credentials.Credentials) error {
	hash, ok := a.users[creds.Username().Value()]
	if !ok {
		// Same rejection as a wrong password to prevent user enumeration
		return ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(creds.Username().Value())
	if err != nil {
		return errs.Mark(err, ErrTokenGeneration)
	}

	a.mu.Lock()
	a.token = token
	a.mu.Unlock()

	return nil
}

// Token returns the session token from the last successful login, or "".
func (a *Local) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}
