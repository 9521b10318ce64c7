package auth

import (
	"errors"

	"bookstore/internal/platform/crypto"
	"bookstore/internal/platform/idtoken"
)

var (
	ErrDuplicateLogin         = errors.New("login already exists")
	ErrLoginNotFound          = errors.New("login not found")
	ErrWrongCredential        = errors.New("wrong credential")
	ErrIdentityCreationFailed = errors.New("identity creation failed")

	ErrEmptyToken            = idtoken.ErrEmptyToken
	ErrInvalidOrExpiredToken = idtoken.ErrInvalidOrExpiredToken
	ErrSigningKeyMissing     = crypto.ErrSigningKeyMissing
)
