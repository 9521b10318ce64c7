package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"bookstore/internal/auth"
	"bookstore/internal/httpx"
	"bookstore/internal/platform/config"
	"bookstore/internal/platform/crypto"
	"bookstore/internal/platform/idtoken"
	"bookstore/internal/platform/logging"
	"bookstore/internal/user"
)

func main() {
	cfg, err := config.Load(".env", ".env.local")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	issuer, err := crypto.NewTokenIssuer(cfg.JWTSecret,
		crypto.WithTTL(cfg.TokenTTL),
		crypto.WithIssuedHook(func(subject string, expiresAt time.Time) {
			logger.Debug().Str("sub", subject).Time("expires_at", expiresAt).Msg("token issued")
		}),
	)
	if err != nil {
		if errors.Is(err, crypto.ErrSigningKeyMissing) {
			return fmt.Errorf("JWT_SECRET must be set: %w", err)
		}
		return err
	}

	repo, ready, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	userService := user.NewService(repo)
	hasher := crypto.NewPasswordHasher()
	localService := auth.NewLocalService(userService, hasher, issuer, logger)

	var federated auth.FederatedAuthenticator
	if cfg.FederationEnabled() {
		validator, err := idtoken.New(ctx, idtoken.Config{
			Issuer:            cfg.OIDCIssuer,
			ClientID:          cfg.OIDCClientID,
			Timeout:           cfg.OIDCTimeout,
			DiscoveryAttempts: cfg.OIDCDiscoveryAttempts,
		})
		if err != nil {
			return err
		}
		federated = auth.NewFederatedService(userService, hasher, issuer, validator, logger)
		logger.Info().Str("issuer", cfg.OIDCIssuer).Msg("federated login enabled")
	}

	limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		cfg:         cfg,
		logger:      logger,
		authHandler: auth.NewHTTPHandler(localService, federated),
		userHandler: user.NewHTTPHandler(userService),
		limiter:     limiter,
		ready:       ready,
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("store", cfg.Store).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// openStore returns the configured user repository, its readiness probe and
// a cleanup func.
func openStore(ctx context.Context, cfg config.Config, logger zerolog.Logger) (user.Repository, func(context.Context) error, func(), error) {
	if cfg.Store == config.StoreMemory {
		logger.Warn().Msg("using in-memory user store; identities are lost on restart")
		return user.NewMemoryRepo(), func(context.Context) error { return nil }, func() {}, nil
	}

	pool, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info().Str("dsn", redactDSN(cfg.DatabaseDSN)).Msg("database connection OK")

	db := stdlib.OpenDBFromPool(pool)
	cleanup := func() {
		_ = db.Close()
		pool.Close()
	}
	return user.NewPostgresRepo(db, cfg.DBTimeout), pool.Ping, cleanup, nil
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database (%s): %w", redactDSN(dsn), err)
	}
	return pool, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
