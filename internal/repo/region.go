// Package repo contains all database access logic for the Sushi API.
// Each resource has its own file with an interface and a SQL implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pkordes/sushi-api/backend/internal/database"
	"github.com/pkordes/sushi-api/backend/internal/domain"
)

// db is the minimal interface satisfied by *sqlx.DB, *sqlx.Tx and *database.DB.
// Accepting this interface instead of a concrete pool lets integration tests
// pass a transaction that is rolled back after each test.
type db interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

// RegionRepo defines the persistence operations for Regions.
// The service layer depends on this interface, not the concrete implementation,
// which allows the service to be unit-tested with a mock.
type RegionRepo interface {
	// List returns all regions. A non-empty filter keeps only regions whose
	// slug, english or katakana contains it (case-sensitive). Order is
	// whatever the database returns.
	List(ctx context.Context, filter string) ([]domain.Region, error)

	// GetBySlug returns the region with exactly this slug.
	// Returns domain.ErrNotFound if there is none.
	GetBySlug(ctx context.Context, slug string) (domain.Region, error)

	// Create inserts a region and returns it with its database-assigned ID.
	Create(ctx context.Context, in domain.RegionInput) (domain.Region, error)

	// Update applies the non-nil fields of patch to the region with this ID
	// and returns the stored result. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, id int64, patch domain.RegionPatch) (domain.Region, error)

	// Delete removes a region by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// sqlRegionRepo is the database/sql implementation of RegionRepo.
type sqlRegionRepo struct {
	db db
	// position is the dialect's 1-based substring search function.
	position string
}

// NewRegionRepo constructs a RegionRepo backed by the provided db connection.
// The dialect selects the substring function used by List.
func NewRegionRepo(db db, dialect database.Dialect) RegionRepo {
	position := "instr"
	if dialect == database.Postgres {
		position = "strpos"
	}
	return &sqlRegionRepo{db: db, position: position}
}

const regionColumns = `id, slug, katakana, english`

// List runs a plain SELECT, adding a substring filter across the three text columns.
func (r *sqlRegionRepo) List(ctx context.Context, filter string) ([]domain.Region, error) {
	q := `SELECT ` + regionColumns + ` FROM region`
	var args []any
	if filter != "" {
		q += fmt.Sprintf(`
		WHERE %[1]s(slug, ?) > 0
		   OR %[1]s(english, ?) > 0
		   OR %[1]s(katakana, ?) > 0`, r.position)
		args = []any{filter, filter, filter}
	}

	regions := []domain.Region{}
	if err := r.db.SelectContext(ctx, &regions, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("repo.RegionRepo.List: %w", err)
	}
	return regions, nil
}

// GetBySlug retrieves a region by exact slug match. If duplicate slugs exist
// one of them is returned.
func (r *sqlRegionRepo) GetBySlug(ctx context.Context, slug string) (domain.Region, error) {
	const q = `SELECT ` + regionColumns + ` FROM region WHERE slug = ? LIMIT 1`

	var region domain.Region
	if err := r.db.GetContext(ctx, &region, r.db.Rebind(q), slug); err != nil {
		return domain.Region{}, fmt.Errorf("repo.RegionRepo.GetBySlug: %w", mapNoRows(err))
	}
	return region, nil
}

// Create inserts a new region row and returns the full persisted record.
func (r *sqlRegionRepo) Create(ctx context.Context, in domain.RegionInput) (domain.Region, error) {
	const q = `
		INSERT INTO region (slug, katakana, english)
		VALUES (:slug, :katakana, :english)
		RETURNING ` + regionColumns

	named, args, err := sqlx.Named(q, in)
	if err != nil {
		return domain.Region{}, fmt.Errorf("repo.RegionRepo.Create: bind: %w", err)
	}

	var region domain.Region
	if err := r.db.GetContext(ctx, &region, r.db.Rebind(named), args...); err != nil {
		return domain.Region{}, fmt.Errorf("repo.RegionRepo.Create: %w", err)
	}
	return region, nil
}

// Update overwrites only the supplied fields. COALESCE keeps the stored value
// for every nil pointer in the patch.
func (r *sqlRegionRepo) Update(ctx context.Context, id int64, patch domain.RegionPatch) (domain.Region, error) {
	const q = `
		UPDATE region
		SET katakana = COALESCE(:katakana, katakana),
		    english  = COALESCE(:english, english)
		WHERE id = :id
		RETURNING ` + regionColumns

	named, args, err := sqlx.Named(q, map[string]any{
		"id":       id,
		"katakana": patch.Katakana, // nil becomes NULL
		"english":  patch.English,
	})
	if err != nil {
		return domain.Region{}, fmt.Errorf("repo.RegionRepo.Update: bind: %w", err)
	}

	var region domain.Region
	if err := r.db.GetContext(ctx, &region, r.db.Rebind(named), args...); err != nil {
		return domain.Region{}, fmt.Errorf("repo.RegionRepo.Update: %w", mapNoRows(err))
	}
	return region, nil
}

// Delete removes a region by primary key.
func (r *sqlRegionRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM region WHERE id = ?`

	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), id)
	if err != nil {
		return fmt.Errorf("repo.RegionRepo.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repo.RegionRepo.Delete: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("repo.RegionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// mapNoRows turns sql.ErrNoRows into domain.ErrNotFound.
func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
