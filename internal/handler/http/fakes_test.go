package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/service"
	"github.com/civilci/intake-portal/models"
)

// ---- Fake services ----
// Each method delegates to a function field; a nil field panics, which
// shows up as a 500 through middleware.Recoverer.

const (
	adminToken  = "admin-token"
	clientToken = "client-token"
	otherToken  = "other-token"
)

var (
	testAdmin  = models.User{ID: "admin-1", Email: "admin@civilci.com", Role: models.RoleAdmin}
	testClient = models.User{ID: "client-1", Email: "jane@example.com", Role: models.RoleClient}
	testOther  = models.User{ID: "client-2", Email: "other@example.com", Role: models.RoleClient}
)

type fakeAuth struct{}

func (fakeAuth) Authenticate(_ context.Context, token string) (models.User, error) {
	switch token {
	case adminToken:
		return testAdmin, nil
	case clientToken:
		return testClient, nil
	case otherToken:
		return testOther, nil
	}
	return models.User{}, service.ErrUnauthenticated
}

type fakeCases struct {
	submit    func(ctx context.Context, actor *models.User, input models.CaseReviewInput) (models.CaseReview, error)
	listAll   func(ctx context.Context, actor *models.User, filter models.CaseFilter) ([]models.CaseReview, error)
	listMine  func(ctx context.Context, actor *models.User) ([]models.CaseReview, error)
	get       func(ctx context.Context, actor *models.User, caseID string) (models.CaseReview, error)
	setStatus func(ctx context.Context, actor *models.User, caseID string, update models.StatusUpdate) (models.CaseReview, error)
}

func (f *fakeCases) Submit(ctx context.Context, actor *models.User, input models.CaseReviewInput) (models.CaseReview, error) {
	return f.submit(ctx, actor, input)
}

func (f *fakeCases) ListAll(ctx context.Context, actor *models.User, filter models.CaseFilter) ([]models.CaseReview, error) {
	return f.listAll(ctx, actor, filter)
}

func (f *fakeCases) ListMine(ctx context.Context, actor *models.User) ([]models.CaseReview, error) {
	return f.listMine(ctx, actor)
}

func (f *fakeCases) Get(ctx context.Context, actor *models.User, caseID string) (models.CaseReview, error) {
	return f.get(ctx, actor, caseID)
}

func (f *fakeCases) SetStatus(ctx context.Context, actor *models.User, caseID string, update models.StatusUpdate) (models.CaseReview, error) {
	return f.setStatus(ctx, actor, caseID, update)
}

type fakeNotes struct {
	add  func(ctx context.Context, actor *models.User, caseID string, input models.NoteInput) (models.CaseNote, error)
	list func(ctx context.Context, actor *models.User, caseID string) ([]models.CaseNote, error)
}

func (f *fakeNotes) AddNote(ctx context.Context, actor *models.User, caseID string, input models.NoteInput) (models.CaseNote, error) {
	return f.add(ctx, actor, caseID, input)
}

func (f *fakeNotes) ListNotes(ctx context.Context, actor *models.User, caseID string) ([]models.CaseNote, error) {
	return f.list(ctx, actor, caseID)
}

type fakeEvidence struct {
	upload   func(ctx context.Context, actor *models.User, caseID string, upload models.EvidenceUpload) (models.EvidenceFile, error)
	list     func(ctx context.Context, actor *models.User, caseID string) ([]models.EvidenceFile, error)
	download func(ctx context.Context, actor *models.User, fileID string) (models.EvidenceDownload, error)
	delete   func(ctx context.Context, actor *models.User, fileID string) error
}

func (f *fakeEvidence) Upload(ctx context.Context, actor *models.User, caseID string, upload models.EvidenceUpload) (models.EvidenceFile, error) {
	return f.upload(ctx, actor, caseID, upload)
}

func (f *fakeEvidence) List(ctx context.Context, actor *models.User, caseID string) ([]models.EvidenceFile, error) {
	return f.list(ctx, actor, caseID)
}

func (f *fakeEvidence) Download(ctx context.Context, actor *models.User, fileID string) (models.EvidenceDownload, error) {
	return f.download(ctx, actor, fileID)
}

func (f *fakeEvidence) Delete(ctx context.Context, actor *models.User, fileID string) error {
	return f.delete(ctx, actor, fileID)
}

type fakeAdmin struct {
	status   models.EmailStatusResponse
	testSend models.EmailTestResponse
}

func (f *fakeAdmin) EmailStatus(context.Context, *models.User) (models.EmailStatusResponse, error) {
	return f.status, nil
}

func (f *fakeAdmin) EmailTest(context.Context, *models.User) (models.EmailTestResponse, error) {
	return f.testSend, nil
}

type fakeHealth struct{ err error }

func (f fakeHealth) Ping(context.Context) error { return f.err }

type fakeAppInfo struct{ version string }

func (f fakeAppInfo) GetAppVersion(context.Context) string { return f.version }

func (f fakeAppInfo) BuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(f.version, "", "")
}

// ---- Helpers ----

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:     fakeAuth{},
		CaseService:     &fakeCases{},
		NoteService:     &fakeNotes{},
		EvidenceService: &fakeEvidence{},
		AdminService:    &fakeAdmin{},
		HealthService:   fakeHealth{},
		AppInfoService:  fakeAppInfo{version: "test-version"},
	}
}

func testConfig() config.StructuredConfig {
	var cfg config.StructuredConfig
	cfg.Storage.Files.MaxUploadBytes = 10 << 20
	return cfg
}

func newTestRouter(svcs *service.Services) http.Handler {
	return NewHandler(svcs, testConfig(), nil, logger.Nop()).Init()
}

// serve runs one request through router. token may be empty.
func serve(t *testing.T, router http.Handler, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func newRequest(method, path string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, path, body)
}

func record(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
