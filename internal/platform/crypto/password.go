package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"
	"regexp"
)

// SaltSize matches the SHA-512 block size so the salt is used as a full HMAC key.
const SaltSize = 128

// PasswordHasher derives a per-credential random salt and an HMAC-SHA512
// digest of the password keyed by that salt.
type PasswordHasher struct {
	saltSize int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{saltSize: SaltSize}
}

// Hash returns a fresh salt and the digest of password under it.
func (h *PasswordHasher) Hash(password string) ([]byte, []byte, error) {
	salt := make([]byte, h.saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, digest(salt, password), nil
}

// Verify reports whether password hashes to the stored digest under salt.
func (h *PasswordHasher) Verify(password string, salt, stored []byte) bool {
	if len(salt) == 0 || len(stored) == 0 {
		return false
	}
	return hmac.Equal(digest(salt, password), stored)
}

func digest(salt []byte, password string) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

var (
	ErrPasswordTooShort      = errors.New("password must be at least 8 characters")
	ErrPasswordNoUpper       = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower       = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber      = errors.New("password must contain at least one number")
	ErrPasswordNoSpecialChar = errors.New("password must contain at least one special character")
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	numberRe  = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if !upperRe.MatchString(password) {
		return ErrPasswordNoUpper
	}
	if !lowerRe.MatchString(password) {
		return ErrPasswordNoLower
	}
	if !numberRe.MatchString(password) {
		return ErrPasswordNoNumber
	}
	if !specialRe.MatchString(password) {
		return ErrPasswordNoSpecialChar
	}
	return nil
}
