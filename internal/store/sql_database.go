package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/migrations"
)

// DB wraps a *sql.DB together with the dialect specific pieces every
// repository needs: a squirrel statement builder with the right placeholder
// format and an error classifier for the driver.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// retryAttempts bounds retries of writes that failed with a retryable error.
const retryAttempts = 3

// NewDB opens the database selected by the DSN form: "file:", "sqlite://",
// ":memory:" and *.db paths open SQLite, anything else opens PostgreSQL.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isSQLiteDSN(cfg.DSN) {
		return NewConnectSQLite(ctx, cfg, log)
	}
	return NewConnectPostgres(ctx, cfg, log)
}

func isSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "file:") ||
		strings.HasPrefix(dsn, "sqlite://") ||
		strings.HasPrefix(dsn, ":memory:") ||
		strings.HasSuffix(dsn, ".db") ||
		strings.HasSuffix(dsn, ".sqlite")
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema for the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the database/sql driver name in use.
func (db *DB) Dialect() string {
	return db.dialect
}

// violation maps a constraint violation to ErrUniqueViolation or
// ErrForeignKeyViolation and returns nil for any other error.
func (db *DB) violation(err error) error {
	if db.errorClassificator == nil {
		return nil
	}
	return db.errorClassificator.Violation(err)
}

// withRetry runs op until it succeeds, fails with a non-retryable error,
// ctx is done, or retryAttempts is reached.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", err, ctx.Err())
		case <-time.After(time.Duration(attempt+1) * 50 * time.Millisecond):
		}
	}
	return err
}
