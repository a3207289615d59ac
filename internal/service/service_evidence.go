// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/store"
	"github.com/civilci/intake-portal/internal/utils"
	"github.com/civilci/intake-portal/internal/validators"
	"github.com/civilci/intake-portal/models"
)

// evidenceService implements [EvidenceService]. Access to a file is always
// decided by its parent case.
type evidenceService struct {
	files    store.EvidenceRepository
	blobs    store.EvidenceBlobStore
	guard    caseGuard
	maxBytes int64

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewEvidenceService(files store.EvidenceRepository, blobs store.EvidenceBlobStore, cases store.CaseReviewRepository, maxBytes int64, logger *logger.Logger) EvidenceService {
	return &evidenceService{
		files:    files,
		blobs:    blobs,
		guard:    caseGuard{cases: cases},
		maxBytes: maxBytes,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

// Upload authorizes and validates before any byte is written, then streams
// the content into the blob store. A blob whose metadata cannot be saved is
// removed again.
func (s *evidenceService) Upload(ctx context.Context, actor *models.User, caseID string, upload models.EvidenceUpload) (models.EvidenceFile, error) {
	log := logger.FromContext(ctx)

	caseReview, err := s.guard.load(ctx, actor, caseID)
	if err != nil {
		return models.EvidenceFile{}, err
	}

	fileName := displayName(upload.FileName)
	if err = validators.EvidenceFileName(fileName); err != nil {
		return models.EvidenceFile{}, err
	}
	fileType, err := validators.EvidenceContentType(upload.ContentType)
	if err != nil {
		return models.EvidenceFile{}, err
	}

	blob, err := s.blobs.Save(ctx, upload.Content, path.Ext(fileName), s.maxBytes)
	if errors.Is(err, store.ErrBlobTooLarge) {
		return models.EvidenceFile{}, validators.FileTooLarge(s.maxBytes)
	}
	if err != nil {
		log.Err(err).Str("case_id", caseID).Msg("error storing evidence blob")
		return models.EvidenceFile{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	file := models.EvidenceFile{
		ID:          s.ids.Generate(),
		CaseID:      caseReview.ID,
		UploadedBy:  actor.ID,
		FileName:    fileName,
		FileType:    fileType,
		FileSize:    blob.Size,
		StoragePath: blob.Name,
		Checksum:    blob.Checksum,
		CreatedAt:   s.now().UTC(),
	}

	saved, err := s.files.CreateEvidenceFile(ctx, file)
	if err != nil {
		log.Err(err).
			Str("case_id", caseID).
			Str("storage_path", blob.Name).
			Msg("error saving evidence metadata; removing blob")
		if rmErr := s.blobs.Remove(ctx, blob.Name); rmErr != nil {
			log.Err(rmErr).Str("storage_path", blob.Name).Msg("orphaned evidence blob")
		}
		return models.EvidenceFile{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return saved, nil
}

func (s *evidenceService) List(ctx context.Context, actor *models.User, caseID string) ([]models.EvidenceFile, error) {
	if _, err := s.guard.load(ctx, actor, caseID); err != nil {
		return nil, err
	}

	files, err := s.files.ListEvidenceFiles(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return files, nil
}

// Download loads the metadata, then the parent case, then authorizes
// against the case before opening the blob.
func (s *evidenceService) Download(ctx context.Context, actor *models.User, fileID string) (models.EvidenceDownload, error) {
	log := logger.FromContext(ctx)

	file, err := s.loadAuthorized(ctx, actor, fileID)
	if err != nil {
		return models.EvidenceDownload{}, err
	}

	content, err := s.blobs.Open(ctx, file.StoragePath)
	if errors.Is(err, store.ErrBlobNotFound) {
		log.Error().
			Str("file_id", file.ID).
			Str("case_id", file.CaseID).
			Str("storage_path", file.StoragePath).
			Msg("evidence metadata without blob")
		return models.EvidenceDownload{}, fmt.Errorf("%w: %w", ErrNotFound, ErrEvidenceBlobMissing)
	}
	if err != nil {
		log.Err(err).Str("file_id", file.ID).Str("storage_path", file.StoragePath).Msg("error opening evidence blob")
		return models.EvidenceDownload{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return models.EvidenceDownload{File: file, Content: content}, nil
}

// Delete removes the blob best-effort and then the metadata row. The row
// removal runs even when blob removal fails or panics.
func (s *evidenceService) Delete(ctx context.Context, actor *models.User, fileID string) (err error) {
	log := logger.FromContext(ctx)

	file, err := s.loadAuthorized(ctx, actor, fileID)
	if err != nil {
		return err
	}

	defer func() {
		rowErr := s.files.DeleteEvidenceFile(ctx, file.ID)
		if rowErr == nil || errors.Is(rowErr, store.ErrEvidenceFileNotFound) {
			return
		}
		log.Err(rowErr).Str("file_id", file.ID).Msg("error deleting evidence metadata")
		err = errors.Join(err, fmt.Errorf("%w: %w", ErrStorageFailure, rowErr))
	}()

	if rmErr := s.blobs.Remove(ctx, file.StoragePath); rmErr != nil {
		log.Err(rmErr).
			Str("file_id", file.ID).
			Str("case_id", file.CaseID).
			Str("storage_path", file.StoragePath).
			Msg("error removing evidence blob; metadata is removed anyway")
	}
	return nil
}

func (s *evidenceService) loadAuthorized(ctx context.Context, actor *models.User, fileID string) (models.EvidenceFile, error) {
	file, err := s.files.FindEvidenceFile(ctx, fileID)
	if errors.Is(err, store.ErrEvidenceFileNotFound) {
		return models.EvidenceFile{}, ErrNotFound
	}
	if err != nil {
		return models.EvidenceFile{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	if _, err = s.guard.load(ctx, actor, file.CaseID); err != nil {
		return models.EvidenceFile{}, err
	}
	return file, nil
}

// displayName strips any client side directory from name.
func displayName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
