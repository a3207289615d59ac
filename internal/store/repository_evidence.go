package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/models"
)

// evidenceRepository is the SQL implementation of [EvidenceRepository]. It
// only handles metadata rows; bytes live in an [EvidenceBlobStore].
type evidenceRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewEvidenceRepository(db *DB, logger *logger.Logger) EvidenceRepository {
	logger.Debug().Msg("creating evidence repository")
	return &evidenceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *evidenceRepository) CreateEvidenceFile(ctx context.Context, file models.EvidenceFile) (models.EvidenceFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertEvidenceQuery(file)
	if err != nil {
		log.Err(err).Str("func", "*evidenceRepository.CreateEvidenceFile").Msg("error building query")
		return models.EvidenceFile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*evidenceRepository.CreateEvidenceFile").Msg("error inserting evidence file")
		if v := r.db.violation(err); v != nil {
			return models.EvidenceFile{}, v
		}
		return models.EvidenceFile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return file, nil
}

func (r *evidenceRepository) FindEvidenceFile(ctx context.Context, id string) (models.EvidenceFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindEvidenceQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*evidenceRepository.FindEvidenceFile").Msg("error building query")
		return models.EvidenceFile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var file models.EvidenceFile
	err = scanEvidenceFile(r.db.QueryRowContext(ctx, query, args...), &file)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EvidenceFile{}, ErrEvidenceFileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*evidenceRepository.FindEvidenceFile").Msg("error scanning evidence file")
		return models.EvidenceFile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return file, nil
}

func (r *evidenceRepository) ListEvidenceFiles(ctx context.Context, caseID string) ([]models.EvidenceFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListEvidenceQuery(caseID)
	if err != nil {
		log.Err(err).Str("func", "*evidenceRepository.ListEvidenceFiles").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*evidenceRepository.ListEvidenceFiles").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.EvidenceFile, 0)
	for rows.Next() {
		var file models.EvidenceFile
		if err = scanEvidenceFile(rows, &file); err != nil {
			log.Err(err).Str("func", "*evidenceRepository.ListEvidenceFiles").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		files = append(files, file)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return files, nil
}

// DeleteEvidenceFile removes the metadata row. Deleting an unknown id is
// reported as [ErrEvidenceFileNotFound].
func (r *evidenceRepository) DeleteEvidenceFile(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteEvidenceQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*evidenceRepository.DeleteEvidenceFile").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*evidenceRepository.DeleteEvidenceFile").Msg("error deleting evidence file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrEvidenceFileNotFound
	}
	return nil
}

// file_size is stored as text; sizes that do not parse are reported as 0
func scanEvidenceFile(row rowScanner, f *models.EvidenceFile) error {
	var size string
	err := row.Scan(
		&f.ID, &f.CaseID, &f.UploadedBy, &f.FileName, &f.FileType,
		&size, &f.StoragePath, &f.Checksum, &f.CreatedAt,
	)
	if err != nil {
		return err
	}

	if parsed, parseErr := strconv.ParseInt(size, 10, 64); parseErr == nil {
		f.FileSize = parsed
	}
	return nil
}
