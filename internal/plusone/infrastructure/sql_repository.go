package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"blog-v0/internal/infrastructure/database"
)

// SQLRepository stores likes as rows of post_likes in SQLite or PostgreSQL
type SQLRepository struct {
	db      *sql.DB
	dialect database.Dialect

	countQuery  string
	insertQuery string
}

// NewSQLRepository creates a like repository over db
func NewSQLRepository(db *sql.DB, dialect database.Dialect) *SQLRepository {
	return &SQLRepository{
		db:          db,
		dialect:     dialect,
		countQuery:  dialect.Rebind("SELECT COUNT(*) FROM post_likes WHERE post_slug = ?"),
		insertQuery: dialect.Rebind("INSERT INTO post_likes (post_slug, created_at, updated_at) VALUES (?, ?, ?)"),
	}
}

// CountBySlug returns the number of like rows for slug
func (r *SQLRepository) CountBySlug(ctx context.Context, slug string) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, r.countQuery, slug).Scan(&count); err != nil {
		return 0, fmt.Errorf("count likes for %q: %w", slug, err)
	}
	return count, nil
}

// Insert appends one like row for slug
func (r *SQLRepository) Insert(ctx context.Context, slug string, at time.Time) error {
	at = at.UTC()
	if _, err := r.db.ExecContext(ctx, r.insertQuery, slug, at, at); err != nil {
		return fmt.Errorf("insert like for %q: %w", slug, err)
	}
	return nil
}
