package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	loginKey     contextKey = "login"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
)

// LoginFrom retrieves the authenticated login from the request context.
func LoginFrom(r *http.Request) string {
	if v, ok := r.Context().Value(loginKey).(string); ok {
		return v
	}
	return ""
}

// RoleFrom retrieves the user role from the request context.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// RequestIDFrom retrieves the request ID assigned by RequestIDMiddleware.
func RequestIDFrom(r *http.Request) string {
	return RequestIDFromContext(r.Context())
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUser returns a new context with the login and role.
func ContextWithUser(ctx context.Context, login, role string) context.Context {
	ctx = context.WithValue(ctx, loginKey, login)
	return context.WithValue(ctx, roleKey, role)
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
