//go:build unit || e2e

package builder

import (
	"chat-login-client/internal/domain/credentials"
)

type LoginFormBuilder struct {
	Username string
	Password string
}

func NewLoginFormBuilder() *LoginFormBuilder {
	return &LoginFormBuilder{
		Username: "testuser",
		Password: "password123",
	}
}

func (b *LoginFormBuilder) WithUsername(username string) *LoginFormBuilder {
	b.Username = username
	return b
}

func (b *LoginFormBuilder) WithPassword(password string) *LoginFormBuilder {
	b.Password = password
	return b
}

func (b *LoginFormBuilder) BuildDomain() (credentials.Credentials, error) {
	return credentials.New(b.Username, b.Password)
}
