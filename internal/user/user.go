package user

import (
	"errors"
	"time"
)

const (
	RoleBuyer = "BUYER"
	RoleAdmin = "ADMIN"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("login already exists")
)

// User is a stored identity together with its local credential.
type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash []byte    `json:"-"`
	PasswordSalt []byte    `json:"-"`
	Role         string    `json:"role"` // BUYER, ADMIN
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
