package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/store"
	"github.com/civilci/intake-portal/internal/utils"
	"github.com/civilci/intake-portal/internal/validators"
	"github.com/civilci/intake-portal/models"
)

type caseNoteService struct {
	notes     store.CaseNoteRepository
	guard     caseGuard
	validator validators.Validator

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewNoteService(notes store.CaseNoteRepository, cases store.CaseReviewRepository, logger *logger.Logger) NoteService {
	return &caseNoteService{
		notes:     notes,
		guard:     caseGuard{cases: cases},
		validator: validators.NewCaseValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// AddNote stores a note on the case. Only admins may create internal
// notes; the flag is dropped for everyone else.
func (s *caseNoteService) AddNote(ctx context.Context, actor *models.User, caseID string, input models.NoteInput) (models.CaseNote, error) {
	caseReview, err := s.guard.load(ctx, actor, caseID)
	if err != nil {
		return models.CaseNote{}, err
	}

	if err = s.validator.Validate(ctx, input); err != nil {
		return models.CaseNote{}, err
	}

	authorID := actor.ID
	note := models.CaseNote{
		ID:         s.ids.Generate(),
		CaseID:     caseReview.ID,
		AuthorID:   &authorID,
		Content:    strings.TrimSpace(input.Content),
		IsInternal: input.IsInternal && actor.IsAdmin(),
		CreatedAt:  s.now().UTC(),
	}

	saved, err := s.notes.CreateCaseNote(ctx, note)
	if errors.Is(err, store.ErrForeignKeyViolation) {
		return models.CaseNote{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("case_id", caseID).Msg("error saving note")
		return models.CaseNote{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return saved, nil
}

// ListNotes returns the case notes newest first. Internal notes are
// removed here for non-admins whatever the repository returned.
func (s *caseNoteService) ListNotes(ctx context.Context, actor *models.User, caseID string) ([]models.CaseNote, error) {
	if _, err := s.guard.load(ctx, actor, caseID); err != nil {
		return nil, err
	}

	notes, err := s.notes.ListCaseNotes(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	if actor.IsAdmin() {
		return notes, nil
	}
	return VisibleNotes(notes), nil
}

// VisibleNotes drops internal notes.
func VisibleNotes(notes []models.CaseNote) []models.CaseNote {
	visible := make([]models.CaseNote, 0, len(notes))
	for _, note := range notes {
		if !note.IsInternal {
			visible = append(visible, note)
		}
	}
	return visible
}
