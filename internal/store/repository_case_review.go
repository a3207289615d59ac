// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/models"
)

// caseReviewRepository is the SQL implementation of [CaseReviewRepository].
type caseReviewRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCaseReviewRepository(db *DB, logger *logger.Logger) CaseReviewRepository {
	logger.Debug().Msg("creating case review repository")
	return &caseReviewRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCaseReview inserts a fully populated case. A dangling owner id is
// reported as [ErrForeignKeyViolation].
func (r *caseReviewRepository) CreateCaseReview(ctx context.Context, caseReview models.CaseReview) (models.CaseReview, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertCaseReviewQuery(caseReview)
	if err != nil {
		log.Err(err).Str("func", "*caseReviewRepository.CreateCaseReview").Msg("error building query")
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*caseReviewRepository.CreateCaseReview").Msg("error inserting case review")
		if v := r.db.violation(err); v != nil {
			return models.CaseReview{}, v
		}
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.CaseReview{}, ErrNotSaved
	}

	return caseReview, nil
}

func (r *caseReviewRepository) FindCaseReview(ctx context.Context, id string) (models.CaseReview, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindCaseReviewQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*caseReviewRepository.FindCaseReview").Msg("error building query")
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var caseReview models.CaseReview
	err = scanCaseReview(r.db.QueryRowContext(ctx, query, args...), &caseReview)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CaseReview{}, ErrCaseReviewNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*caseReviewRepository.FindCaseReview").Msg("error scanning case review")
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return caseReview, nil
}

func (r *caseReviewRepository) ListCaseReviews(ctx context.Context, q CaseReviewQuery) ([]models.CaseReview, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListCaseReviewsQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*caseReviewRepository.ListCaseReviews").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caseReviewRepository.ListCaseReviews").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cases := make([]models.CaseReview, 0)
	for rows.Next() {
		var caseReview models.CaseReview
		if err = scanCaseReview(rows, &caseReview); err != nil {
			log.Err(err).Str("func", "*caseReviewRepository.ListCaseReviews").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cases = append(cases, caseReview)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*caseReviewRepository.ListCaseReviews").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cases, nil
}

// UpdateCaseStatus overwrites the status unconditionally and returns the
// updated case. Concurrent updates are last-write-wins.
func (r *caseReviewRepository) UpdateCaseStatus(ctx context.Context, id string, status models.CaseStatus, updatedAt time.Time) (models.CaseReview, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateCaseStatusQuery(id, status, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*caseReviewRepository.UpdateCaseStatus").Msg("error building query")
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*caseReviewRepository.UpdateCaseStatus").Msg("error updating status")
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.CaseReview{}, ErrCaseReviewNotFound
	}

	return r.FindCaseReview(ctx, id)
}

func scanCaseReview(row rowScanner, c *models.CaseReview) error {
	var (
		userID, phone, serviceType sql.NullString
		urgency, status            string
	)

	err := row.Scan(
		&c.ID, &userID, &c.Name, &c.Email, &phone, &serviceType,
		&c.CaseSummary, &urgency, &status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return err
	}

	c.UserID = nullString(userID)
	c.Phone = nullString(phone)
	if serviceType.Valid {
		st := models.ServiceType(serviceType.String)
		c.ServiceType = &st
	}
	c.Urgency = models.Urgency(urgency)

	// rows written before status names were normalized may hold aliases
	if parsed, parseErr := models.ParseCaseStatus(status); parseErr == nil {
		c.Status = parsed
	} else {
		c.Status = models.CaseStatus(status)
	}

	return nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
