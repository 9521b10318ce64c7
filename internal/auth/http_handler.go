package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookstore/internal/httpx"
)

//go:generate mockgen -destination=mocks/mock_authenticator.go -package=mocks bookstore/internal/auth LocalAuthenticator,FederatedAuthenticator

type LocalAuthenticator interface {
	Register(ctx context.Context, in RegisterInput) (Result, error)
	Login(ctx context.Context, login, password string) (Result, error)
}

type FederatedAuthenticator interface {
	RegisterFederated(ctx context.Context, idToken, localPassword string) (Result, error)
	LoginFederated(ctx context.Context, idToken string) (Result, error)
}

type HTTPHandler struct {
	local     LocalAuthenticator
	federated FederatedAuthenticator
}

// NewHTTPHandler builds the auth handler. federated may be nil when no
// identity provider is configured.
func NewHTTPHandler(local LocalAuthenticator, federated FederatedAuthenticator) *HTTPHandler {
	return &HTTPHandler{local: local, federated: federated}
}

// FederationEnabled reports whether the federated routes should be mounted.
func (h *HTTPHandler) FederationEnabled() bool {
	return h.federated != nil
}

type registerReq struct {
	Login       string `json:"login" validate:"required,login,max=100"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	DisplayName string `json:"display_name" validate:"max=100"`
}

// Register handles POST /v1/auth/register
// @Summary Register a local identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerReq true "Registration request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/auth/register [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}
	if req.DisplayName == "" {
		req.DisplayName = req.Login
	}

	res, err := h.local.Register(r.Context(), RegisterInput{
		Login:       req.Login,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	httpx.JSONSuccessCreated(w, r, res)
}

type loginReq struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /v1/auth/login
// @Summary Log in with login and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginReq true "Login request"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/auth/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Login = strings.TrimSpace(req.Login)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	res, err := h.local.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, res, nil)
}

// Emptiness of id_token is left to the service so it surfaces as EMPTY_TOKEN.
type federatedRegisterReq struct {
	IDToken  string `json:"id_token"`
	Password string `json:"password" validate:"omitempty,min=8,max=128"`
}

// RegisterFederated handles POST /v1/auth/federated/register
// @Summary Register with an identity provider token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body federatedRegisterReq true "Federated registration request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/auth/federated/register [post]
func (h *HTTPHandler) RegisterFederated(w http.ResponseWriter, r *http.Request) {
	var req federatedRegisterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	res, err := h.federated.RegisterFederated(r.Context(), req.IDToken, req.Password)
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	httpx.JSONSuccessCreated(w, r, res)
}

type federatedLoginReq struct {
	IDToken string `json:"id_token"`
}

// LoginFederated handles POST /v1/auth/federated/login
// @Summary Log in with an identity provider token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body federatedLoginReq true "Federated login request"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/auth/federated/login [post]
func (h *HTTPHandler) LoginFederated(w http.ResponseWriter, r *http.Request) {
	var req federatedLoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	res, err := h.federated.LoginFederated(r.Context(), req.IDToken)
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, res, nil)
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrDuplicateLogin):
		httpx.JSONError(w, r, http.StatusConflict, "DUPLICATE_LOGIN", "Login already exists", nil)
	case errors.Is(err, ErrLoginNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "LOGIN_NOT_FOUND", "Login not found", nil)
	case errors.Is(err, ErrWrongCredential):
		httpx.JSONError(w, r, http.StatusUnauthorized, "WRONG_CREDENTIAL", "Wrong login or password", nil)
	case errors.Is(err, ErrEmptyToken):
		httpx.JSONError(w, r, http.StatusBadRequest, "EMPTY_TOKEN", "Identity token is required", nil)
	case errors.Is(err, ErrInvalidOrExpiredToken):
		httpx.JSONError(w, r, http.StatusUnauthorized, "INVALID_TOKEN", "Identity token is invalid or expired", nil)
	case errors.Is(err, ErrIdentityCreationFailed):
		httpx.JSONError(w, r, http.StatusInternalServerError, "IDENTITY_CREATION_FAILED", "Could not create identity", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
