package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/XSAM/otelsql"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"
)

// Dialect identifies the SQL flavour behind a connection
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DialectFor picks the dialect from a DATABASE_URL value. Anything that is not
// a postgres URL is treated as a SQLite path or file: URI.
func DialectFor(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// Rebind rewrites ? placeholders into the dialect's positional form.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Connect opens a traced connection pool for dsn.
func Connect(dsn string) (*sql.DB, Dialect, error) {
	dialect := DialectFor(dsn)

	switch dialect {
	case DialectPostgres:
		db, err := otelsql.Open("postgres", dsn, otelsql.WithAttributes(attribute.String("db.system", "postgresql")))
		if err != nil {
			return nil, dialect, fmt.Errorf("failed to open postgres: %w", err)
		}
		return db, dialect, nil
	default:
		db, err := ConnectSQLite(strings.TrimPrefix(dsn, "sqlite://"))
		if err != nil {
			return nil, dialect, err
		}
		return db, dialect, nil
	}
}

func ConnectSQLite(dbName string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dbName, "?") {
		sep = "&"
	}

	db, err := otelsql.Open("sqlite",
		fmt.Sprintf("%s%s_pragma=journal_mode(WAL)&_pragma=busy_timeout(500)", dbName, sep),
		otelsql.WithAttributes(attribute.String("db.system", "sqlite")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// every pooled connection to :memory: would get its own empty database
	if strings.Contains(dbName, ":memory:") || strings.Contains(dbName, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	return db, nil
}
