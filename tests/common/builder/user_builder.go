//go:build unit || e2e

package builder

import (
	"testing"

	"chat-login-client/internal/pkg/password"
	"chat-login-client/tests/common/authstub"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type UserBuilder struct {
	ID       uuid.UUID
	Username string
	Password string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Username: "testuser",
		Password: "password123",
	}
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPassword(pass string) *UserBuilder {
	u.Password = pass
	return u
}

func (u *UserBuilder) BuildStub(t *testing.T) authstub.User {
	t.Helper()

	hash, err := password.HashPassword(u.Password)
	require.NoError(t, err)

	return authstub.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: hash,
	}
}
