package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"bookstore/internal/auth"
	"bookstore/internal/httpx"
	"bookstore/internal/platform/config"
	"bookstore/internal/user"
)

type routerDeps struct {
	cfg         config.Config
	logger      zerolog.Logger
	authHandler *auth.HTTPHandler
	userHandler *user.HTTPHandler
	limiter     *httpx.RateLimitMiddleware
	// ready reports whether the store can serve requests.
	ready func(ctx context.Context) error
}

func newRouter(d routerDeps) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := d.ready(ctx); err != nil {
			d.logger.Warn().Err(err).Msg("readiness check failed")
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	limited := func(h http.HandlerFunc) http.Handler {
		return d.limiter.Middleware(h)
	}
	router.Handle("POST /v1/auth/register", limited(d.authHandler.Register))
	router.Handle("POST /v1/auth/login", limited(d.authHandler.Login))
	if d.authHandler.FederationEnabled() {
		router.Handle("POST /v1/auth/federated/register", limited(d.authHandler.RegisterFederated))
		router.Handle("POST /v1/auth/federated/login", limited(d.authHandler.LoginFederated))
	}

	protectedMe := httpx.AuthMiddleware(d.cfg.JWTSecret)(http.HandlerFunc(d.userHandler.GetCurrentUser))
	router.Handle("GET /v1/me", protectedMe)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(d.cfg.MaxBodyBytes)(handler)
	handler = httpx.CORSMiddleware(d.cfg.CORSAllowedOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(d.cfg.EnableHSTS)(handler)
	handler = httpx.AccessLogMiddleware(d.logger)(handler)
	handler = httpx.RecoveryMiddleware(d.logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)
	return handler
}
