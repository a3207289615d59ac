package store

import (
	"context"
	"fmt"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
)

// Storages groups every repository the service layer depends on.
type Storages struct {
	DB *DB

	Users         UserRepository
	CaseReviews   CaseReviewRepository
	CaseNotes     CaseNoteRepository
	Evidence      EvidenceRepository
	EvidenceBlobs EvidenceBlobStore
}

// NewStorages connects to the configured database, applies migrations and
// prepares the evidence area.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	blobs, err := NewEvidenceFileStorage(cfg.Files.EvidenceDir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:            db,
		Users:         NewUserRepository(db, log),
		CaseReviews:   NewCaseReviewRepository(db, log),
		CaseNotes:     NewCaseNoteRepository(db, log),
		Evidence:      NewEvidenceRepository(db, log),
		EvidenceBlobs: blobs,
	}, nil
}

func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
