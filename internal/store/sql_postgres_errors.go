package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed statement is
// worth another attempt.
type ErrorClassification int

const (
	// NonRetryable is the zero value and the answer for anything unknown.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a dropped connection or a
	// deadlock victim.
	Retryable
)

// ErrorClassificator inspects driver errors for a single SQL backend.
type ErrorClassificator interface {
	// Classify tells whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// Violation returns ErrUniqueViolation or ErrForeignKeyViolation when
	// err is such a constraint violation, and nil otherwise.
	Violation(err error) error
}

// PostgresErrorClassifier reads SQLSTATE codes from pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify retries connection exceptions (class 08), transaction rollbacks
// (class 40: serialization failures and deadlocks) and 57P03 "cannot connect
// now" during a server restart. Everything else, constraint violations
// included, fails immediately.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresCode(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

func (c *PostgresErrorClassifier) Violation(err error) error {
	switch postgresCode(err) {
	case pgerrcode.UniqueViolation:
		return ErrUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ErrForeignKeyViolation
	default:
		return nil
	}
}

// postgresCode returns the SQLSTATE of a wrapped *pgconn.PgError, or "".
func postgresCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
