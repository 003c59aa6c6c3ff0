// Package migrate applies the embedded schema migrations using goose's
// Provider API. Applied versions are tracked in goose's goose_db_version
// table, so running Up twice is a no-op the second time.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/pkordes/sushi-api/backend/internal/database"
	"github.com/pkordes/sushi-api/backend/migrations"
)

// Migrator runs migrations against one database.
type Migrator struct {
	provider *goose.Provider
	log      *slog.Logger
}

// New builds a Migrator for db using the migration files for dialect.
func New(db *sql.DB, dialect database.Dialect, log *slog.Logger) (*Migrator, error) {
	gooseDialect, err := gooseDialectFor(dialect)
	if err != nil {
		return nil, err
	}
	fsys, err := migrations.FS(string(dialect))
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migrate: create goose provider: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Migrator{provider: provider, log: log}, nil
}

// Up applies every pending migration in version order and returns how many
// ran. It stops at the first failure; migrations applied before it stay
// applied, are listed in the log and are counted in the returned number.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		n := m.logPartial(err)
		return n, fmt.Errorf("migrate: up: %w", err)
	}
	m.logResults(results)
	return len(results), nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrate: down: %w", err)
	}
	m.logResults([]*goose.MigrationResult{result})
	return nil
}

// DownTo rolls back migrations until version is the newest applied one.
// DownTo(ctx, 0) reverts everything.
func (m *Migrator) DownTo(ctx context.Context, version int64) (int, error) {
	results, err := m.provider.DownTo(ctx, version)
	if err != nil {
		n := m.logPartial(err)
		return n, fmt.Errorf("migrate: down to %d: %w", version, err)
	}
	m.logResults(results)
	return len(results), nil
}

// logPartial logs the migrations goose completed before err and returns
// how many there were.
func (m *Migrator) logPartial(err error) int {
	var partial *goose.PartialError
	if !errors.As(err, &partial) {
		return 0
	}
	m.logResults(partial.Applied)
	return len(partial.Applied)
}

// Status is one migration and whether it has been applied.
type Status struct {
	Version int64
	Name    string
	Applied bool
}

// Status lists every known migration in version order.
func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate: status: %w", err)
	}
	out := make([]Status, len(statuses))
	for i, s := range statuses {
		out[i] = Status{
			Version: s.Source.Version,
			Name:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		}
	}
	return out, nil
}

// Version returns the newest applied migration version, or 0.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	v, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrate: version: %w", err)
	}
	return v, nil
}

func (m *Migrator) logResults(results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		m.log.Info("migration applied",
			"direction", r.Direction,
			"version", r.Source.Version,
			"source", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
}

func gooseDialectFor(d database.Dialect) (goose.Dialect, error) {
	switch d {
	case database.SQLite:
		return goose.DialectSQLite3, nil
	case database.Postgres:
		return goose.DialectPostgres, nil
	}
	return "", fmt.Errorf("migrate: unsupported dialect %q", d)
}
