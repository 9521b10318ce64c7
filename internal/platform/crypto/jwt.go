package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued bearer token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

var ErrSigningKeyMissing = errors.New("token signing key is not configured")

type Claims struct {
	Sub  string `json:"sub"`  // login
	Role string `json:"role"` // BUYER/ADMIN
	jwt.RegisteredClaims
}

// TokenIssuer signs stateless HS512 bearer tokens for authenticated logins.
type TokenIssuer struct {
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
	onIssue func(subject string, expiresAt time.Time)
}

type IssuerOption func(*TokenIssuer)

func WithTTL(ttl time.Duration) IssuerOption {
	return func(i *TokenIssuer) {
		if ttl > 0 {
			i.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) IssuerOption {
	return func(i *TokenIssuer) { i.now = now }
}

// WithIssuedHook registers a callback run after every successful issuance.
// The hook never sees the token itself.
func WithIssuedHook(hook func(subject string, expiresAt time.Time)) IssuerOption {
	return func(i *TokenIssuer) { i.onIssue = hook }
}

func NewTokenIssuer(secret string, opts ...IssuerOption) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrSigningKeyMissing
	}
	i := &TokenIssuer{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Issue returns a signed token for subject and the instant it expires.
func (i *TokenIssuer) Issue(subject, role string) (string, time.Time, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)

	c := Claims{
		Sub:  subject,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS512, c)
	tokenStr, err := t.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	if i.onIssue != nil {
		i.onIssue(subject, expiresAt)
	}
	return tokenStr, expiresAt, nil
}

// ParseToken verifies an HS512 token signed with secret. Tokens without an
// exp claim are rejected.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	if secret == "" {
		return nil, ErrSigningKeyMissing
	}
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
