package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/civilci/intake-portal/internal/adapter"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/store"
	"github.com/civilci/intake-portal/internal/utils"
	"github.com/civilci/intake-portal/internal/validators"
	"github.com/civilci/intake-portal/internal/workers"
	"github.com/civilci/intake-portal/models"
)

// caseReviewService implements [CaseService]. Notifications are handed to
// the dispatcher and never affect the outcome of an operation.
type caseReviewService struct {
	cases      store.CaseReviewRepository
	guard      caseGuard
	validator  validators.Validator
	notifier   adapter.Notifier
	dispatcher workers.Dispatcher

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewCaseService(cases store.CaseReviewRepository, notifier adapter.Notifier, dispatcher workers.Dispatcher, logger *logger.Logger) CaseService {
	return &caseReviewService{
		cases:      cases,
		guard:      caseGuard{cases: cases},
		validator:  validators.NewCaseValidator(),
		notifier:   notifier,
		dispatcher: dispatcher,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *caseReviewService) Submit(ctx context.Context, actor *models.User, input models.CaseReviewInput) (models.CaseReview, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.CaseReview{}, err
	}

	now := s.now().UTC()
	caseReview := models.CaseReview{
		ID:          s.ids.Generate(),
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		CaseSummary: strings.TrimSpace(input.CaseSummary),
		Urgency:     models.Urgency(input.Urgency),
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if actor != nil {
		ownerID := actor.ID
		caseReview.UserID = &ownerID
	}
	if input.Phone != nil {
		if phone := strings.TrimSpace(*input.Phone); phone != "" {
			caseReview.Phone = &phone
		}
	}
	if input.ServiceType != nil && *input.ServiceType != "" {
		serviceType := models.ServiceType(*input.ServiceType)
		caseReview.ServiceType = &serviceType
	}

	saved, err := s.cases.CreateCaseReview(ctx, caseReview)
	if err != nil {
		log.Err(err).Str("case_id", caseReview.ID).Msg("error saving case review")
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	s.dispatcher.Go(ctx, "new-case-alert", func(ctx context.Context) error {
		return s.notifier.NewCaseAlert(ctx, saved)
	})
	s.dispatcher.Go(ctx, "case-confirmation", func(ctx context.Context) error {
		return s.notifier.CaseConfirmation(ctx, saved)
	})

	return saved, nil
}

// ListAll returns every case matching filter. The default triage order puts
// the most urgent first and breaks ties newest first.
func (s *caseReviewService) ListAll(ctx context.Context, actor *models.User, filter models.CaseFilter) ([]models.CaseReview, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	cases, err := s.cases.ListCaseReviews(ctx, store.CaseReviewQuery{Status: filter.Status})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	if filter.Sort != models.SortNewest {
		SortForTriage(cases)
	}
	return cases, nil
}

// SortForTriage orders cases by urgency rank, then by submission time
// descending. The sort is stable.
func SortForTriage(cases []models.CaseReview) {
	slices.SortStableFunc(cases, func(a, b models.CaseReview) int {
		if c := cmp.Compare(a.Urgency.Rank(), b.Urgency.Rank()); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func (s *caseReviewService) ListMine(ctx context.Context, actor *models.User) ([]models.CaseReview, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	ownerID := actor.ID
	cases, err := s.cases.ListCaseReviews(ctx, store.CaseReviewQuery{OwnerID: &ownerID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return cases, nil
}

func (s *caseReviewService) Get(ctx context.Context, actor *models.User, caseID string) (models.CaseReview, error) {
	return s.guard.load(ctx, actor, caseID)
}

// SetStatus is admin only; non-admins get ErrNotFound like any other denied
// case access. A status-change notification is dispatched only when the
// status actually changed.
func (s *caseReviewService) SetStatus(ctx context.Context, actor *models.User, caseID string, update models.StatusUpdate) (models.CaseReview, error) {
	log := logger.FromContext(ctx)

	current, err := s.guard.load(ctx, actor, caseID)
	if err != nil {
		return models.CaseReview{}, err
	}
	if !actor.IsAdmin() {
		return models.CaseReview{}, ErrNotFound
	}

	if err = s.validator.Validate(ctx, update); err != nil {
		return models.CaseReview{}, err
	}
	status, err := models.ParseCaseStatus(update.Status)
	if err != nil {
		return models.CaseReview{}, validators.NewFieldError(validators.FieldStatus, err.Error())
	}

	updated, err := s.cases.UpdateCaseStatus(ctx, caseID, status, s.now().UTC())
	if errors.Is(err, store.ErrCaseReviewNotFound) {
		return models.CaseReview{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("case_id", caseID).Msg("error updating case status")
		return models.CaseReview{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	if previous := current.Status; previous != updated.Status {
		s.dispatcher.Go(ctx, "status-changed", func(ctx context.Context) error {
			return s.notifier.StatusChanged(ctx, updated, previous)
		})
	}

	return updated, nil
}
