// Package migrations holds the database schema and applies it in file order.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"sort"

	"weev/internal/errors"
)

//go:embed sql/*.sql
var files embed.FS

// Names returns the embedded migration files in the order they are applied.
func Names() ([]string, error) {
	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	sort.Strings(names)

	return names, nil
}

// Apply executes every migration against db. Statements are idempotent, so
// applying twice is safe.
func Apply(ctx context.Context, db *sql.DB) error {
	names, err := Names()
	if err != nil {
		return err
	}

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "read migration %s", name)
		}

		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return errors.Wrapf(err, "apply migration %s", name)
		}
	}

	return nil
}
