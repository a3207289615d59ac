package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user was not found")

	// ErrCaseReviewNotFound is returned when no case review has the given id.
	ErrCaseReviewNotFound = errors.New("case review was not found")

	// ErrEvidenceFileNotFound is returned when no evidence metadata row has
	// the given id.
	ErrEvidenceFileNotFound = errors.New("evidence file was not found")

	// ErrNotSaved is returned when an INSERT or UPDATE completes without
	// error but affects no rows.
	ErrNotSaved = errors.New("record was not saved")

	// ErrUniqueViolation is returned when a write collides with a unique key.
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrForeignKeyViolation is returned when a write references a parent row
	// that does not exist.
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
)

// Evidence blob area errors.
var (
	// ErrBlobNotFound is returned when a blob named by a metadata row is
	// missing from the evidence area.
	ErrBlobNotFound = errors.New("evidence blob not found")

	// ErrBlobTooLarge is returned when a blob exceeds the size limit while
	// being written. The partial blob is removed before returning.
	ErrBlobTooLarge = errors.New("evidence blob exceeds size limit")

	// ErrInvalidBlobName is returned for names that could escape the
	// evidence area.
	ErrInvalidBlobName = errors.New("invalid evidence blob name")

	// ErrWritingBlob wraps I/O failures while storing a blob.
	ErrWritingBlob = errors.New("error writing evidence blob")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
