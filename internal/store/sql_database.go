package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/migrations"
)

// Dialect names the SQL flavour behind a [DB]. The values double as goose
// dialect names.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps *sql.DB with the dialect-specific query builder and error
// classifier used by every repository.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN: postgres:// and
// postgresql:// URLs go to PostgreSQL through pgx, anything else is opened as
// an SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if DialectFromDSN(cfg.DSN) == DialectPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// DialectFromDSN reports which driver NewConnect would use for dsn.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// Dialect returns the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder using the placeholder style
// of the connection.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// lowerFunc names the SQL function used for case-insensitive matching.
func (db *DB) lowerFunc() string {
	if db.dialect == DialectSQLite {
		return sqliteLowerFunc
	}
	return "LOWER"
}

// wrapError wraps err with ErrStoreUnavailable when the classifier says so,
// otherwise with fallback.
func (db *DB) wrapError(err, fallback error) error {
	if db.classify(err) == Unavailable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}

func (db *DB) classify(err error) ErrorClassification {
	if class := classifyCommonError(err); class != Unclassified {
		return class
	}
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is the default for errors with no special meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation marks a rejected insert of a duplicate key.
	UniqueViolation

	// Unavailable marks connection loss, timeouts and similar conditions
	// where the database could not serve the request at all.
	Unavailable
)

func classifyCommonError(err error) ErrorClassification {
	switch {
	case err == nil:
		return Unclassified
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone):
		return Unavailable
	}
	return Unclassified
}
