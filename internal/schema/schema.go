// Package schema holds the DDL for the like store.
package schema

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"blog-v0/internal/infrastructure/database"
)

var (
	//go:embed sqlite.sql
	SQLiteDDL string

	//go:embed postgres.sql
	PostgresDDL string
)

// DDL returns the schema for dialect
func DDL(dialect database.Dialect) string {
	if dialect == database.DialectPostgres {
		return PostgresDDL
	}
	return SQLiteDDL
}

// Apply creates missing tables and indexes. It is safe to run on every start.
func Apply(ctx context.Context, db *sql.DB, dialect database.Dialect) error {
	if _, err := db.ExecContext(ctx, DDL(dialect)); err != nil {
		return fmt.Errorf("failed to apply %s schema: %w", dialect, err)
	}
	return nil
}
