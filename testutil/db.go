// Package testutil provides shared helpers for tests that need a real database.
// SQLite helpers always work: each call creates a disposable database file
// inside t.TempDir(). Postgres helpers skip automatically when
// TEST_DATABASE_URL is not set, so they never break environments without one.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/pkordes/sushi-api/backend/internal/config"
	"github.com/pkordes/sushi-api/backend/internal/database"
	"github.com/pkordes/sushi-api/backend/internal/migrate"
)

// testPool keeps test connections short-lived so files close promptly.
var testPool = config.PoolConfig{MaxOpenConns: 5, MaxIdleConns: 1}

// NewSQLiteDB returns a fresh SQLite database with every migration applied,
// so the region table exists and holds the seven seeded rows.
// The file is removed along with t.TempDir() when the test finishes.
func NewSQLiteDB(t *testing.T) *database.DB {
	t.Helper()
	db := NewEmptySQLiteDB(t)
	MustMigrate(t, db)
	return db
}

// NewEmptySQLiteDB returns a fresh SQLite database with no migrations applied.
func NewEmptySQLiteDB(t *testing.T) *database.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test_sushi_"+uuid.NewString()+".db")
	db, err := database.Open(context.Background(), "sqlite:"+path+"?mode=rwc", testPool)
	if err != nil {
		t.Fatalf("testutil.NewEmptySQLiteDB: open: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// NewPostgresDB connects to TEST_DATABASE_URL and applies every migration.
// The test is skipped if TEST_DATABASE_URL is not set. The database is shared
// between tests, so callers should isolate themselves with a transaction.
func NewPostgresDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres integration test")
	}

	db, err := database.Open(context.Background(), dsn, testPool)
	if err != nil {
		t.Fatalf("testutil.NewPostgresDB: open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	MustMigrate(t, db)
	return db
}

// MustMigrate applies all pending migrations to db, failing the test on error.
func MustMigrate(t *testing.T, db *database.DB) {
	t.Helper()

	m, err := migrate.New(db.DB.DB, db.Dialect, DiscardLogger())
	if err != nil {
		t.Fatalf("testutil.MustMigrate: %v", err)
	}
	if _, err := m.Up(context.Background()); err != nil {
		t.Fatalf("testutil.MustMigrate: %v", err)
	}
}

// DiscardLogger returns a logger that drops everything, for code under test
// that insists on a *slog.Logger.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
