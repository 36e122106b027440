package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate applies the embedded schema for the configured driver. Every
// statement is idempotent so Migrate is safe to run on each start.
func (db *DB) Migrate(ctx context.Context) error {
	ddl, err := schemaFS.ReadFile("schema/" + db.driver + ".sql")
	if err != nil {
		return fmt.Errorf("reading schema for %s: %w", db.driver, err)
	}

	// Both drivers accept several statements in one parameterless Exec.
	if _, err := db.engine.Context(ctx).Exec(string(ddl)); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	db.logger.InfoContext(ctx, "database schema applied", slog.String("driver", db.driver))
	return nil
}
