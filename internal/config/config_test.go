package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_HOST", "HTTP_PORT", "DB_DRIVER", "DB_DSN",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"), nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "storefront.db", cfg.DBDSN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
}

func TestLoadConfigPrecedence(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9000\nDB_DRIVER=mysql\nDB_DSN=shop:secret@tcp(db:3306)/shop\nLOG_FORMAT=json\n"), 0o600))
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadConfig(envFile, []string{"-host", "0.0.0.0"})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9100", cfg.Addr())
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "shop:secret@tcp(db:3306)/shop", cfg.DBDSN)
	assert.Equal(t, "json", cfg.LogFormat)

	cfg, err = LoadConfig(envFile, []string{"-port", "9200", "-db-driver", "postgres"})
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "port not a number", env: map[string]string{"HTTP_PORT": "http"}},
		{name: "port out of range", args: []string{"-port", "70000"}},
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "oracle"}},
		{name: "unknown log format", args: []string{"-log-format", "xml"}},
		{name: "unknown flag", args: []string{"-verbose"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := LoadConfig("", tc.args)
			assert.Error(t, err)
		})
	}
}
