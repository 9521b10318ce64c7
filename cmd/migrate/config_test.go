package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MigrationsDirOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/custom/migrations", cfg.MigrationsDir)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	require.NoError(t, os.Unsetenv("MIGRATIONS_DIR"))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")
	require.NoError(t, os.WriteFile(p, []byte("DB_DSN=from_file\n"), 0o644))

	t.Setenv("DB_DSN", "from_env")

	cwd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	loadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
}

func TestGooseLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	l := gooseLogger{logger: zerolog.New(&buf)}

	l.Printf("OK   %s (%d ms)", "00001_create_users.sql", 12)

	assert.Contains(t, buf.String(), "OK   00001_create_users.sql (12 ms)")
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), "sideways", "db/migrations", nil)

	assert.ErrorIs(t, err, errUnknownCommand)
}
