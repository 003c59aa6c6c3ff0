package middleware_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/sushi-api/backend/internal/config"
)

// defaultConfig returns the configuration the server runs with when no
// environment variables are set.
func defaultConfig(t *testing.T) config.Config {
	t.Helper()
	for _, k := range []string{
		"HOST", "PORT", "DATABASE_URL", "RUN_MIGRATIONS", "LOG_LEVEL",
		"CORS_ORIGINS", "STATIC_DIR", "MAX_BODY_BYTES",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME",
		"DB_CONN_MAX_IDLE_TIME", "DB_CONNECT_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	return cfg
}
