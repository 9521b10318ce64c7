package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"bookstore/internal/platform/logging"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	goose.SetLogger(gooseLogger{logger: logger})

	if *command == "create" {
		if *name == "" {
			logger.Fatal().Msg("name is required for 'create' command")
		}
		if err := goose.Create(nil, cfg.MigrationsDir, *name, "sql"); err != nil {
			logger.Fatal().Err(err).Msg("failed to create migration")
		}
		return
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal().Err(err).Msg("failed to set dialect")
	}

	if err := run(ctx, *command, cfg.MigrationsDir, db); err != nil {
		logger.Fatal().Err(err).Str("command", *command).Msg("migration failed")
	}
	logger.Info().Str("command", *command).Str("dir", cfg.MigrationsDir).Msg("migration command finished")
}

var errUnknownCommand = errors.New("unknown command: use up, down, status, create")

func run(ctx context.Context, command, dir string, db *sql.DB) error {
	switch command {
	case "up":
		return goose.UpContext(ctx, db, dir)
	case "down":
		return goose.DownContext(ctx, db, dir)
	case "status":
		return goose.StatusContext(ctx, db, dir)
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}
