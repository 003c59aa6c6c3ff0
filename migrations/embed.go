// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests, the migrate tool and server bootstrap.
//
// Each dialect has its own directory. The files share version numbers and
// names so the goose_db_version table reads the same on either engine.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var all embed.FS

// FS returns the migration files for dialect ("sqlite" or "postgres"),
// rooted so that goose sees the *.sql files at the top level.
func FS(dialect string) (fs.FS, error) {
	switch dialect {
	case "sqlite", "postgres":
		return fs.Sub(all, dialect)
	}
	return nil, fmt.Errorf("migrations: no migrations for dialect %q", dialect)
}
