package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookstore/internal/platform/crypto"
	"bookstore/internal/user"
)

const TestSecret = "test-secret-key"

// TestBuyer is a stored buyer identity for handler tests.
var TestBuyer = user.User{
	ID:          "8b0f4c9e-1d2a-4e55-9a1b-3c6d7e8f9012",
	Login:       "reader",
	DisplayName: "Avid Reader",
	Email:       "reader@example.com",
	Role:        user.RoleBuyer,
	CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	UpdatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
}

// GenerateTestToken issues a token for login the same way the API does.
func GenerateTestToken(secret, login, role string) string {
	issuer, err := crypto.NewTokenIssuer(secret)
	if err != nil {
		panic(err)
	}
	token, _, err := issuer.Issue(login, role)
	if err != nil {
		panic(err)
	}
	return token
}

// GenerateExpiredToken signs a token that expired an hour ago.
func GenerateExpiredToken(secret, login, role string) string {
	c := crypto.Claims{
		Sub:  login,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS512, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing. A string body is sent
// verbatim; anything else is JSON encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var r *http.Request
	switch b := body.(type) {
	case nil:
		r = httptest.NewRequest(method, path, nil)
	case string:
		r = httptest.NewRequest(method, path, bytes.NewBufferString(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request with a bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse is a decoded response envelope.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Data returns the "data" object of a success envelope.
func (r RecordResponse) Data() map[string]interface{} {
	data, _ := r.Body["data"].(map[string]interface{})
	return data
}

// ErrorCode returns error.code of an error envelope.
func (r RecordResponse) ErrorCode() string {
	errBody, _ := r.Body["error"].(map[string]interface{})
	code, _ := errBody["code"].(string)
	return code
}
