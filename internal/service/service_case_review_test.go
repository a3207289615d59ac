// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/mock"
	"github.com/civilci/intake-portal/internal/store"
	"github.com/civilci/intake-portal/internal/validators"
	"github.com/civilci/intake-portal/internal/workers"
	"github.com/civilci/intake-portal/models"
)

// newTestCaseSvc wires caseReviewService with mocks. Dispatched tasks run
// synchronously so their effects are observable.
func newTestCaseSvc(t *testing.T, ctrl *gomock.Controller) (
	*caseReviewService,
	*mock.MockCaseReviewRepository,
	*mock.MockNotifier,
	*mock.MockDispatcher,
) {
	t.Helper()
	cases := mock.NewMockCaseReviewRepository(ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	dispatcher := mock.NewMockDispatcher(ctrl)

	svc := NewCaseService(cases, notifier, dispatcher, logger.Nop()).(*caseReviewService)
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc, cases, notifier, dispatcher
}

func runTasks(ctx context.Context, _ string, task workers.Task) {
	_ = task(ctx)
}

func validInput() models.CaseReviewInput {
	return models.CaseReviewInput{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		CaseSummary: strings.Repeat("a", 60),
		Urgency:     "critical",
	}
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestSubmit_AnonymousCreatesPendingCaseAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, notifier, dispatcher := newTestCaseSvc(t, ctrl)
	ctx := context.Background()

	cases.EXPECT().CreateCaseReview(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.CaseReview) (models.CaseReview, error) {
			assert.Nil(t, c.UserID)
			assert.Equal(t, models.StatusPending, c.Status)
			assert.Equal(t, models.UrgencyCritical, c.Urgency)
			assert.NotEmpty(t, c.ID)
			return c, nil
		})
	dispatcher.EXPECT().Go(ctx, "new-case-alert", gomock.Any()).Do(runTasks)
	dispatcher.EXPECT().Go(ctx, "case-confirmation", gomock.Any()).Do(runTasks)
	notifier.EXPECT().NewCaseAlert(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	notifier.EXPECT().CaseConfirmation(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Submit(ctx, nil, validInput())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestSubmit_AuthenticatedActorOwnsCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, _, dispatcher := newTestCaseSvc(t, ctrl)

	in := validInput()
	in.Phone = strPtr("  ")
	in.ServiceType = strPtr("timeline-map")

	cases.EXPECT().CreateCaseReview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.CaseReview) (models.CaseReview, error) {
			require.NotNil(t, c.UserID)
			assert.Equal(t, owner.ID, *c.UserID)
			assert.Nil(t, c.Phone)
			require.NotNil(t, c.ServiceType)
			assert.Equal(t, models.ServiceType("timeline-map"), *c.ServiceType)
			return c, nil
		})
	dispatcher.EXPECT().Go(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	_, err := svc.Submit(context.Background(), owner, in)
	require.NoError(t, err)
}

func TestSubmit_SummaryBoundary(t *testing.T) {
	tests := []struct {
		length  int
		wantErr bool
	}{
		{49, true},
		{50, false},
	}

	for _, tt := range tests {
		ctrl := gomock.NewController(t)
		svc, cases, _, dispatcher := newTestCaseSvc(t, ctrl)

		in := validInput()
		in.CaseSummary = strings.Repeat("x", tt.length)

		if !tt.wantErr {
			cases.EXPECT().CreateCaseReview(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, c models.CaseReview) (models.CaseReview, error) { return c, nil })
			dispatcher.EXPECT().Go(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
		}

		_, err := svc.Submit(context.Background(), nil, in)
		if tt.wantErr {
			var verr *validators.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, validators.FieldCaseSummary, verr.Fields[0].Field)
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestSubmit_StorageFailureSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, _, _ := newTestCaseSvc(t, ctrl)

	cases.EXPECT().CreateCaseReview(gomock.Any(), gomock.Any()).Return(models.CaseReview{}, errors.New("disk full"))

	_, err := svc.Submit(context.Background(), nil, validInput())
	assert.ErrorIs(t, err, ErrStorageFailure)
}

// ── ListAll / ListMine ───────────────────────────────────────────────────────

func TestListAll_TriageOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, _, _ := newTestCaseSvc(t, ctrl)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// newest first, as returned by the repository
	stored := []models.CaseReview{
		{ID: "low-new", Urgency: models.UrgencyLow, CreatedAt: base.Add(4 * time.Hour)},
		{ID: "crit-new", Urgency: models.UrgencyCritical, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "high", Urgency: models.UrgencyHigh, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "crit-old", Urgency: models.UrgencyCritical, CreatedAt: base.Add(time.Hour)},
		{ID: "medium", Urgency: models.UrgencyMedium, CreatedAt: base},
	}
	cases.EXPECT().ListCaseReviews(gomock.Any(), store.CaseReviewQuery{}).Return(stored, nil)

	got, err := svc.ListAll(context.Background(), admin, models.CaseFilter{})
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"crit-new", "crit-old", "high", "medium", "low-new"}, ids)
}

func TestListAll_NewestKeepsRepositoryOrderAndPassesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, _, _ := newTestCaseSvc(t, ctrl)

	status := models.StatusClosed
	stored := []models.CaseReview{{ID: "b", Urgency: models.UrgencyLow}, {ID: "a", Urgency: models.UrgencyCritical}}
	cases.EXPECT().ListCaseReviews(gomock.Any(), store.CaseReviewQuery{Status: &status}).Return(stored, nil)

	got, err := svc.ListAll(context.Background(), admin, models.CaseFilter{Status: &status, Sort: models.SortNewest})
	require.NoError(t, err)
	assert.Equal(t, "b", got[0].ID)
}

func TestListAll_RoleGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestCaseSvc(t, ctrl)

	_, err := svc.ListAll(context.Background(), owner, models.CaseFilter{})
	assert.ErrorIs(t, err, ErrAdminOnly)

	_, err = svc.ListAll(context.Background(), nil, models.CaseFilter{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestListMine_FiltersByOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, _, _ := newTestCaseSvc(t, ctrl)

	cases.EXPECT().ListCaseReviews(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q store.CaseReviewQuery) ([]models.CaseReview, error) {
			require.NotNil(t, q.OwnerID)
			assert.Equal(t, owner.ID, *q.OwnerID)
			return []models.CaseReview{ownedCase()}, nil
		})

	got, err := svc.ListMine(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListMine(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// ── SetStatus ────────────────────────────────────────────────────────────────

func TestSetStatus_NotifiesOnceAndSurvivesNotificationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, notifier, dispatcher := newTestCaseSvc(t, ctrl)

	current := ownedCase()
	updated := current
	updated.Status = models.StatusCompleted

	cases.EXPECT().FindCaseReview(gomock.Any(), "case-1").Return(current, nil)
	cases.EXPECT().UpdateCaseStatus(gomock.Any(), "case-1", models.StatusCompleted, gomock.Any()).Return(updated, nil)
	dispatcher.EXPECT().Go(gomock.Any(), "status-changed", gomock.Any()).Do(runTasks).Times(1)
	notifier.EXPECT().StatusChanged(gomock.Any(), updated, models.StatusPending).Return(errors.New("api down")).Times(1)

	got, err := svc.SetStatus(context.Background(), admin, "case-1", models.StatusUpdate{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
}

func TestSetStatus_UnchangedDoesNotNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, _, _ := newTestCaseSvc(t, ctrl)

	current := ownedCase()
	cases.EXPECT().FindCaseReview(gomock.Any(), "case-1").Return(current, nil)
	cases.EXPECT().UpdateCaseStatus(gomock.Any(), "case-1", models.StatusPending, gomock.Any()).Return(current, nil)

	_, err := svc.SetStatus(context.Background(), admin, "case-1", models.StatusUpdate{Status: "pending"})
	require.NoError(t, err)
}

func TestSetStatus_NormalizesAliases(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, _, dispatcher := newTestCaseSvc(t, ctrl)

	current := ownedCase()
	updated := current
	updated.Status = models.StatusUnderReview

	cases.EXPECT().FindCaseReview(gomock.Any(), "case-1").Return(current, nil)
	cases.EXPECT().UpdateCaseStatus(gomock.Any(), "case-1", models.StatusUnderReview, gomock.Any()).Return(updated, nil)
	dispatcher.EXPECT().Go(gomock.Any(), "status-changed", gomock.Any())

	_, err := svc.SetStatus(context.Background(), admin, "case-1", models.StatusUpdate{Status: "in-review"})
	require.NoError(t, err)
}

func TestSetStatus_Denials(t *testing.T) {
	tests := []struct {
		name    string
		actor   *models.User
		status  string
		wantErr error
	}{
		{"owner cannot change status", owner, "closed", ErrNotFound},
		{"stranger sees not found", stranger, "closed", ErrNotFound},
		{"unknown status", admin, "archived", validators.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, cases, _, _ := newTestCaseSvc(t, ctrl)
			cases.EXPECT().FindCaseReview(gomock.Any(), "case-1").Return(ownedCase(), nil)

			_, err := svc.SetStatus(context.Background(), tt.actor, "case-1", models.StatusUpdate{Status: tt.status})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGet_ForeignCaseIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, cases, _, _ := newTestCaseSvc(t, ctrl)
	cases.EXPECT().FindCaseReview(gomock.Any(), "case-1").Return(ownedCase(), nil).Times(2)

	_, err := svc.Get(context.Background(), stranger, "case-1")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(context.Background(), owner, "case-1")
	require.NoError(t, err)
	assert.Equal(t, "case-1", got.ID)
}
