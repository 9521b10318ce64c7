package user

import (
	"context"
	"errors"
	"net/http"

	"bookstore/internal/httpx"
)

//go:generate mockgen -destination=mocks/mock_finder.go -package=mocks bookstore/internal/user Finder

type Finder interface {
	GetByLogin(ctx context.Context, login string) (User, error)
}

type HTTPHandler struct {
	users Finder
}

func NewHTTPHandler(users Finder) *HTTPHandler {
	return &HTTPHandler{users: users}
}

// GetCurrentUser handles GET /v1/me
// @Summary Get current user
// @Description Get the authenticated identity
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/me [get]
func (h *HTTPHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	login := httpx.LoginFrom(r)
	if login == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	u, err := h.users.GetByLogin(r.Context(), login)
	if err != nil {
		// The token outlived its identity.
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"id":           u.ID,
		"login":        u.Login,
		"display_name": u.DisplayName,
		"email":        u.Email,
		"role":         u.Role,
	}, nil)
}
