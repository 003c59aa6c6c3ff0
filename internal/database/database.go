// Package database opens the relational database behind the Sushi API.
// It hides the difference between the SQLite file used for local development
// and tests and the Postgres server used in production: callers get a
// *sqlx.DB plus the Dialect so SQL and migrations can pick the right flavour.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/pkordes/sushi-api/backend/internal/config"
)

// Dialect names the SQL engine behind a DB.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// sqliteDriver is the database/sql driver name registered by modernc.org/sqlite.
const sqliteDriver = "sqlite"

func init() {
	// sqlx only knows "sqlite3"; teach it that modernc's driver uses ? binds.
	sqlx.BindDriver(sqliteDriver, sqlx.QUESTION)
}

// DB is a connection pool together with the dialect it speaks.
type DB struct {
	*sqlx.DB
	Dialect Dialect
}

// ParseDialect reports which engine a DATABASE_URL points at.
func ParseDialect(databaseURL string) (Dialect, error) {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite:"):
		return SQLite, nil
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return Postgres, nil
	}
	return "", fmt.Errorf("database: unsupported database url scheme in %q", redact(databaseURL))
}

// Open connects to databaseURL, applies the pool settings and verifies the
// connection with a ping. The caller owns the returned DB and must Close it.
func Open(ctx context.Context, databaseURL string, pool config.PoolConfig) (*DB, error) {
	dialect, err := ParseDialect(databaseURL)
	if err != nil {
		return nil, err
	}

	var db *sqlx.DB
	switch dialect {
	case SQLite:
		db, err = openSQLite(databaseURL)
	case Postgres:
		db, err = openPostgres(databaseURL, pool)
	}
	if err != nil {
		return nil, err
	}

	if dialect == SQLite && InMemory(databaseURL) {
		pool = memoryPool(pool)
	}
	applyPool(db.DB, pool)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}
	return &DB{DB: db, Dialect: dialect}, nil
}

// SQLiteDSN converts "sqlite:<path>[?query]" into a modernc.org/sqlite URI,
// adding a busy timeout, WAL journaling and foreign keys. Concurrent writers
// wait on the busy timeout instead of failing with SQLITE_BUSY.
func SQLiteDSN(databaseURL string) string {
	rest := strings.TrimPrefix(databaseURL, "sqlite:")
	rest = strings.TrimPrefix(rest, "//")

	path, rawQuery, _ := strings.Cut(rest, "?")
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		q = url.Values{}
	}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(1)")

	return "file:" + path + "?" + q.Encode()
}

// InMemory reports whether a sqlite: URL names an in-memory database
// (":memory:" or mode=memory). Each connection to such a URL sees its own
// empty database.
func InMemory(databaseURL string) bool {
	rest := strings.TrimPrefix(databaseURL, "sqlite:")
	rest = strings.TrimPrefix(rest, "//")
	path, rawQuery, _ := strings.Cut(rest, "?")
	if path == ":memory:" {
		return true
	}
	q, err := url.ParseQuery(rawQuery)
	return err == nil && q.Get("mode") == "memory"
}

// memoryPool pins an in-memory database to one connection that is never
// recycled, so migrations and queries all see the same data.
func memoryPool(pool config.PoolConfig) config.PoolConfig {
	pool.MaxOpenConns = 1
	pool.MaxIdleConns = 1
	pool.ConnMaxLifetime = 0
	pool.ConnMaxIdleTime = 0
	return pool
}

func openSQLite(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Open(sqliteDriver, SQLiteDSN(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("database: open sqlite: %w", err)
	}
	return db, nil
}

func openPostgres(databaseURL string, pool config.PoolConfig) (*sqlx.DB, error) {
	cfg, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("database: parse postgres url: %w", err)
	}
	if pool.ConnectTimeout > 0 {
		cfg.ConnectTimeout = pool.ConnectTimeout
	}
	return sqlx.NewDb(stdlib.OpenDB(*cfg), "pgx"), nil
}

// applyPool sets the database/sql pool limits.
func applyPool(db *sql.DB, pool config.PoolConfig) {
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)
}

// redact strips credentials so URLs can be logged or put in errors.
// A URL that does not parse is replaced entirely, since its password
// cannot be located.
func redact(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "<unparseable url>"
	}
	if u.User == nil {
		return databaseURL
	}
	return u.Redacted()
}
