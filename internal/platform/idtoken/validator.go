// Package idtoken verifies OpenID Connect identity tokens issued by an
// external provider and extracts the identity claims the bookstore trusts.
package idtoken

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/coreos/go-oidc/v3/oidc"
)

const (
	DefaultTimeout           = 5 * time.Second
	DefaultDiscoveryAttempts = 3
)

var (
	ErrEmptyToken            = errors.New("identity token is empty")
	ErrInvalidOrExpiredToken = errors.New("identity token is invalid or expired")
)

// Payload holds the verified claims of an identity token.
type Payload struct {
	Subject       string
	Email         string
	EmailVerified bool
	DisplayName   string
}

type Config struct {
	// Issuer is the provider URL, e.g. https://accounts.google.com.
	Issuer string
	// ClientID is the audience every accepted token must carry.
	ClientID string
	// Timeout bounds a single Validate call, including key fetches.
	Timeout time.Duration
	// DiscoveryAttempts bounds retries of the discovery request in New.
	DiscoveryAttempts uint
	HTTPClient        *http.Client
	// Now overrides the verifier clock. Used in tests.
	Now func() time.Time
}

func (c *Config) validate() error {
	if c.Issuer == "" {
		return errors.New("idtoken: issuer is required")
	}
	if c.ClientID == "" {
		return errors.New("idtoken: client ID is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.DiscoveryAttempts == 0 {
		c.DiscoveryAttempts = DefaultDiscoveryAttempts
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
}

func (c *Config) oidcConfig() *oidc.Config {
	return &oidc.Config{
		ClientID: c.ClientID,
		Now:      c.Now,
	}
}

type Validator struct {
	verifier *oidc.IDTokenVerifier
	timeout  time.Duration
}

// New discovers the provider's configuration and signing keys endpoint,
// retrying with exponential backoff up to cfg.DiscoveryAttempts times.
func New(ctx context.Context, cfg Config) (*Validator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	ctx = oidc.ClientContext(ctx, cfg.HTTPClient)
	provider, err := backoff.Retry(ctx, func() (*oidc.Provider, error) {
		return oidc.NewProvider(ctx, cfg.Issuer)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(cfg.DiscoveryAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("idtoken: discovery failed for %s: %w", cfg.Issuer, err)
	}

	return &Validator{
		verifier: provider.Verifier(cfg.oidcConfig()),
		timeout:  cfg.Timeout,
	}, nil
}

// NewWithKeySet builds a validator that checks signatures against keys
// instead of discovering them.
func NewWithKeySet(cfg Config, keys oidc.KeySet) (*Validator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if keys == nil {
		return nil, errors.New("idtoken: key set is required")
	}
	cfg.applyDefaults()

	return &Validator{
		verifier: oidc.NewVerifier(cfg.Issuer, keys, cfg.oidcConfig()),
		timeout:  cfg.Timeout,
	}, nil
}

// Validate checks signature, issuer, audience and expiry of rawIDToken.
// Every failure, including key retrieval errors and timeouts, is reported as
// ErrInvalidOrExpiredToken.
func (v *Validator) Validate(ctx context.Context, rawIDToken string) (Payload, error) {
	rawIDToken = strings.TrimSpace(rawIDToken)
	if rawIDToken == "" {
		return Payload{}, ErrEmptyToken
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	token, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, err)
	}

	var claims struct {
		Email         string       `json:"email"`
		EmailVerified flexibleBool `json:"email_verified"`
		Name          string       `json:"name"`
	}
	if err := token.Claims(&claims); err != nil {
		return Payload{}, fmt.Errorf("%w: decode claims: %w", ErrInvalidOrExpiredToken, err)
	}

	return Payload{
		Subject:       token.Subject,
		Email:         claims.Email,
		EmailVerified: bool(claims.EmailVerified),
		DisplayName:   claims.Name,
	}, nil
}

// flexibleBool accepts both true and "true"; some providers send the
// email_verified claim as a string.
type flexibleBool bool

func (b *flexibleBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexibleBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("email_verified: %w", err)
	}
	*b = flexibleBool(strings.EqualFold(s, "true"))
	return nil
}
