package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"bookstore/internal/user"
)

type RegisterInput struct {
	Login       string
	Password    string
	DisplayName string
}

// LocalService registers and authenticates login/password identities.
type LocalService struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenIssuer
	logger zerolog.Logger
}

func NewLocalService(users UserStore, hasher PasswordHasher, tokens TokenIssuer, logger zerolog.Logger) *LocalService {
	return &LocalService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With().Str("component", "auth.local").Logger(),
	}
}

func (s *LocalService) Register(ctx context.Context, in RegisterInput) (Result, error) {
	taken, err := s.users.LoginTaken(ctx, in.Login)
	if err != nil {
		return Result{}, fmt.Errorf("check login: %w", err)
	}
	if taken {
		return Result{}, ErrDuplicateLogin
	}

	salt, digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Result{}, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Login:        in.Login,
		DisplayName:  in.DisplayName,
		PasswordHash: digest,
		PasswordSalt: salt,
		Role:         user.RoleBuyer,
	}
	if err := createIdentity(ctx, s.users, u); err != nil {
		s.logger.Warn().Err(err).Str("login", in.Login).Msg("local registration failed")
		return Result{}, err
	}
	s.logger.Info().Str("login", u.Login).Str("user_id", u.ID).Msg("local identity registered")

	return issue(s.tokens, *u)
}

func (s *LocalService) Login(ctx context.Context, login, password string) (Result, error) {
	u, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Result{}, ErrLoginNotFound
		}
		return Result{}, fmt.Errorf("lookup login: %w", err)
	}

	if !s.hasher.Verify(password, u.PasswordSalt, u.PasswordHash) {
		s.logger.Debug().Str("login", login).Msg("wrong credential")
		return Result{}, ErrWrongCredential
	}

	return issue(s.tokens, u)
}

// createIdentity persists u. A unique violation that slipped past the
// existence check is still reported as ErrDuplicateLogin.
func createIdentity(ctx context.Context, users UserStore, u *user.User) error {
	err := users.Create(ctx, u)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, user.ErrAlreadyExists):
		return ErrDuplicateLogin
	default:
		return fmt.Errorf("%w: %w", ErrIdentityCreationFailed, err)
	}
}

func issue(tokens TokenIssuer, u user.User) (Result, error) {
	token, expiresAt, err := tokens.Issue(u.Login, u.Role)
	if err != nil {
		return Result{}, fmt.Errorf("issue token: %w", err)
	}
	return Result{
		DisplayName: u.DisplayName,
		Token:       token,
		ExpiresAt:   expiresAt,
	}, nil
}
