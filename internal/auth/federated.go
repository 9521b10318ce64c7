package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"bookstore/internal/user"
)

const placeholderPasswordBytes = 32

var errUnverifiedEmail = errors.New("email not verified by provider")

// FederatedService registers and authenticates identities vouched for by an
// external OpenID Connect provider. The verified email is the login.
type FederatedService struct {
	users     UserStore
	hasher    PasswordHasher
	tokens    TokenIssuer
	validator IDTokenValidator
	logger    zerolog.Logger
}

func NewFederatedService(users UserStore, hasher PasswordHasher, tokens TokenIssuer, validator IDTokenValidator, logger zerolog.Logger) *FederatedService {
	return &FederatedService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		logger:    logger.With().Str("component", "auth.federated").Logger(),
	}
}

// RegisterFederated creates a BUYER identity for the token's email. The local
// password is stored hashed but never checked on federated login; when it is
// blank a random one is generated.
func (s *FederatedService) RegisterFederated(ctx context.Context, idToken, localPassword string) (Result, error) {
	login, displayName, email, err := s.resolve(ctx, idToken)
	if err != nil {
		return Result{}, err
	}

	taken, err := s.users.LoginTaken(ctx, login)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrIdentityCreationFailed, err)
	}
	if taken {
		return Result{}, ErrDuplicateLogin
	}

	if strings.TrimSpace(localPassword) == "" {
		localPassword, err = placeholderPassword()
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrIdentityCreationFailed, err)
		}
	}
	salt, digest, err := s.hasher.Hash(localPassword)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrIdentityCreationFailed, err)
	}

	u := &user.User{
		Login:        login,
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: digest,
		PasswordSalt: salt,
		Role:         user.RoleBuyer,
	}
	if err := createIdentity(ctx, s.users, u); err != nil {
		s.logger.Warn().Err(err).Str("login", login).Msg("federated registration failed")
		return Result{}, err
	}
	s.logger.Info().Str("login", u.Login).Str("user_id", u.ID).Msg("federated identity registered")

	return issue(s.tokens, *u)
}

// LoginFederated issues a token for the identity matching the token's email.
// No password is checked.
func (s *FederatedService) LoginFederated(ctx context.Context, idToken string) (Result, error) {
	login, _, _, err := s.resolve(ctx, idToken)
	if err != nil {
		return Result{}, err
	}

	u, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Result{}, ErrLoginNotFound
		}
		return Result{}, fmt.Errorf("lookup login: %w", err)
	}

	return issue(s.tokens, u)
}

// resolve validates idToken and derives the local login from its verified
// email. Logins are case-sensitive, so the email keeps its casing.
func (s *FederatedService) resolve(ctx context.Context, idToken string) (login, displayName, email string, err error) {
	payload, err := s.validator.Validate(ctx, idToken)
	if err != nil {
		if !errors.Is(err, ErrEmptyToken) {
			s.logger.Debug().Err(err).Msg("identity token rejected")
		}
		return "", "", "", err
	}

	email = strings.TrimSpace(payload.Email)
	if email == "" || !payload.EmailVerified {
		return "", "", "", fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, errUnverifiedEmail)
	}

	displayName = strings.TrimSpace(payload.DisplayName)
	if displayName == "" {
		displayName = email
	}
	return email, displayName, email, nil
}

func placeholderPassword() (string, error) {
	b := make([]byte, placeholderPasswordBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
