// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/civilci/intake-portal/internal/store"
	"github.com/civilci/intake-portal/models"
)

// Authorize is the single access predicate for case-scoped operations.
// Admins are admitted to every case, clients only to the cases they own.
// A nil actor is never admitted. Denial is reported as ErrNotFound so that
// a foreign case is indistinguishable from a missing one.
func Authorize(actor *models.User, caseReview models.CaseReview) error {
	if actor == nil {
		return ErrNotFound
	}
	if actor.IsAdmin() || caseReview.OwnedBy(actor.ID) {
		return nil
	}
	return ErrNotFound
}

// caseGuard loads cases and authorizes the actor against them.
type caseGuard struct {
	cases store.CaseReviewRepository
}

// load fetches the case and then authorizes; existence is checked first.
func (g caseGuard) load(ctx context.Context, actor *models.User, caseID string) (models.CaseReview, error) {
	caseReview, err := g.cases.FindCaseReview(ctx, caseID)
	if errors.Is(err, store.ErrCaseReviewNotFound) {
		return models.CaseReview{}, ErrNotFound
	}
	if err != nil {
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	if err = Authorize(actor, caseReview); err != nil {
		return models.CaseReview{}, err
	}
	return caseReview, nil
}
