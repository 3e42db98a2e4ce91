package credentials

import (
	"errors"
	"strings"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
)

type Username struct {
	value string
}

// NewUsername rejects values that are empty after trimming, but keeps the
// original value: the authenticator receives the form snapshot as typed.
func NewUsername(s string) (Username, error) {
	if strings.TrimSpace(s) == "" {
		return Username{}, ErrEmptyUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if strings.TrimSpace(s) == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Credentials is an immutable snapshot of the login form at submit time.
type Credentials struct {
	username Username
	password Password
}

func New(usernameStr, passwordStr string) (Credentials, error) {
	username, err := NewUsername(usernameStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() Username {
	return c.username
}

func (c Credentials) Password() Password {
	return c.password
}
