package domain

import (
	"context"
	"errors"
)

// User is the opaque account record the backend returns. The backend owns
// credential storage; this side only relays.
type User struct {
	Username string `json:"username"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if c.Username == "" || c.Password == "" {
		return ErrInvalidCredentials
	}
	return nil
}

type Service interface {
	Login(ctx context.Context, creds Credentials) (User, error)
	Register(ctx context.Context, creds Credentials) (User, error)
}

var ErrInvalidCredentials = errors.New("invalid_credentials")
