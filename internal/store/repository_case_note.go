package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/models"
)

// caseNoteRepository is the SQL implementation of [CaseNoteRepository].
type caseNoteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCaseNoteRepository(db *DB, logger *logger.Logger) CaseNoteRepository {
	logger.Debug().Msg("creating case note repository")
	return &caseNoteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *caseNoteRepository) CreateCaseNote(ctx context.Context, note models.CaseNote) (models.CaseNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertCaseNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*caseNoteRepository.CreateCaseNote").Msg("error building query")
		return models.CaseNote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*caseNoteRepository.CreateCaseNote").Msg("error inserting note")
		if v := r.db.violation(err); v != nil {
			return models.CaseNote{}, v
		}
		return models.CaseNote{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

func (r *caseNoteRepository) ListCaseNotes(ctx context.Context, caseID string) ([]models.CaseNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListCaseNotesQuery(caseID)
	if err != nil {
		log.Err(err).Str("func", "*caseNoteRepository.ListCaseNotes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caseNoteRepository.ListCaseNotes").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.CaseNote, 0)
	for rows.Next() {
		var (
			note     models.CaseNote
			authorID sql.NullString
		)
		if err = rows.Scan(&note.ID, &note.CaseID, &authorID, &note.Content, &note.IsInternal, &note.CreatedAt); err != nil {
			log.Err(err).Str("func", "*caseNoteRepository.ListCaseNotes").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		note.AuthorID = nullString(authorID)
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
