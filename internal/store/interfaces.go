package store

import (
	"context"
	"io"
	"time"

	"github.com/civilci/intake-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists identities provisioned from verified tokens.
type UserRepository interface {
	// UpsertUser inserts the user or refreshes the email of an existing
	// user with the same external id. The role is only ever promoted to
	// admin, never demoted, by an upsert.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// CaseReviewQuery narrows ListCaseReviews. Nil fields do not filter.
type CaseReviewQuery struct {
	OwnerID *string
	Status  *models.CaseStatus
}

type CaseReviewRepository interface {
	CreateCaseReview(ctx context.Context, caseReview models.CaseReview) (models.CaseReview, error)
	FindCaseReview(ctx context.Context, id string) (models.CaseReview, error)
	// ListCaseReviews returns matching cases newest first.
	ListCaseReviews(ctx context.Context, query CaseReviewQuery) ([]models.CaseReview, error)
	UpdateCaseStatus(ctx context.Context, id string, status models.CaseStatus, updatedAt time.Time) (models.CaseReview, error)
}

type CaseNoteRepository interface {
	CreateCaseNote(ctx context.Context, note models.CaseNote) (models.CaseNote, error)
	// ListCaseNotes returns every note of the case newest first, internal
	// ones included.
	ListCaseNotes(ctx context.Context, caseID string) ([]models.CaseNote, error)
}

type EvidenceRepository interface {
	CreateEvidenceFile(ctx context.Context, file models.EvidenceFile) (models.EvidenceFile, error)
	FindEvidenceFile(ctx context.Context, id string) (models.EvidenceFile, error)
	ListEvidenceFiles(ctx context.Context, caseID string) ([]models.EvidenceFile, error)
	DeleteEvidenceFile(ctx context.Context, id string) error
}

// EvidenceBlobStore keeps evidence bytes outside of the database. Blobs
// are addressed by the storage name recorded in the metadata row.
type EvidenceBlobStore interface {
	// Save streams r into a new uniquely named blob with extension ext,
	// failing with ErrBlobTooLarge once more than maxBytes were read.
	Save(ctx context.Context, r io.Reader, ext string, maxBytes int64) (models.StoredBlob, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}
