package auth

import (
	"context"
	"time"

	"bookstore/internal/platform/idtoken"
	"bookstore/internal/user"
)

// UserStore is the slice of user.Service the auth services depend on.
type UserStore interface {
	LoginTaken(ctx context.Context, login string) (bool, error)
	Create(ctx context.Context, u *user.User) error
	GetByLogin(ctx context.Context, login string) (user.User, error)
}

type PasswordHasher interface {
	Hash(password string) (salt, digest []byte, err error)
	Verify(password string, salt, stored []byte) bool
}

type TokenIssuer interface {
	Issue(subject, role string) (string, time.Time, error)
}

type IDTokenValidator interface {
	Validate(ctx context.Context, rawIDToken string) (idtoken.Payload, error)
}

// Result is returned by every successful registration or login.
type Result struct {
	DisplayName string    `json:"display_name"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
