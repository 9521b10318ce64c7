package user

import (
	"context"
)

// Repository persists users. Create must return ErrAlreadyExists when the
// login is already taken, even if a prior lookup reported it free.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByLogin(ctx context.Context, login string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
