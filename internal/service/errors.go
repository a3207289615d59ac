package service

import "errors"

var (
	// ErrNotFound covers both a missing case-scoped resource and one the
	// actor may not access.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated is returned when an operation needs an actor and
	// none could be resolved.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrAdminOnly is returned by role-gated operations that are not scoped
	// to a single case.
	ErrAdminOnly = errors.New("admin role required")

	// ErrStorageFailure wraps blob or metadata persistence failures.
	ErrStorageFailure = errors.New("storage failure")

	// ErrEvidenceBlobMissing marks evidence whose metadata exists but whose
	// bytes are gone. It is always reported together with ErrNotFound.
	ErrEvidenceBlobMissing = errors.New("evidence blob missing")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
