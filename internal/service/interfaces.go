package service

import (
	"context"

	"github.com/civilci/intake-portal/models"
)

// AuthService resolves bearer tokens to provisioned users.
type AuthService interface {
	// Authenticate verifies token and upserts the identity it names.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// CaseService implements the case review lifecycle.
type CaseService interface {
	// Submit validates input and stores a pending case owned by actor, or
	// by nobody when actor is nil.
	Submit(ctx context.Context, actor *models.User, input models.CaseReviewInput) (models.CaseReview, error)
	ListAll(ctx context.Context, actor *models.User, filter models.CaseFilter) ([]models.CaseReview, error)
	ListMine(ctx context.Context, actor *models.User) ([]models.CaseReview, error)
	Get(ctx context.Context, actor *models.User, caseID string) (models.CaseReview, error)
	SetStatus(ctx context.Context, actor *models.User, caseID string, update models.StatusUpdate) (models.CaseReview, error)
}

type NoteService interface {
	AddNote(ctx context.Context, actor *models.User, caseID string, input models.NoteInput) (models.CaseNote, error)
	ListNotes(ctx context.Context, actor *models.User, caseID string) ([]models.CaseNote, error)
}

type EvidenceService interface {
	Upload(ctx context.Context, actor *models.User, caseID string, upload models.EvidenceUpload) (models.EvidenceFile, error)
	List(ctx context.Context, actor *models.User, caseID string) ([]models.EvidenceFile, error)
	// Download returns the metadata and an open blob; the caller closes
	// Content.
	Download(ctx context.Context, actor *models.User, fileID string) (models.EvidenceDownload, error)
	Delete(ctx context.Context, actor *models.User, fileID string) error
}

// AdminService backs the notification settings view.
type AdminService interface {
	EmailStatus(ctx context.Context, actor *models.User) (models.EmailStatusResponse, error)
	EmailTest(ctx context.Context, actor *models.User) (models.EmailTestResponse, error)
}

type HealthService interface {
	Ping(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
