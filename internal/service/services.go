package service

import (
	"github.com/civilci/intake-portal/internal/adapter"
	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/store"
	"github.com/civilci/intake-portal/internal/workers"
	"github.com/civilci/intake-portal/models"
)

type Services struct {
	AuthService     AuthService
	CaseService     CaseService
	NoteService     NoteService
	EvidenceService EvidenceService
	AdminService    AdminService
	HealthService   HealthService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, notifier adapter.Notifier, dispatcher workers.Dispatcher, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.Users, cfg.App, logger),
		CaseService:     NewCaseService(storages.CaseReviews, notifier, dispatcher, logger),
		NoteService:     NewNoteService(storages.CaseNotes, storages.CaseReviews, logger),
		EvidenceService: NewEvidenceService(storages.Evidence, storages.EvidenceBlobs, storages.CaseReviews, cfg.Storage.Files.MaxUploadBytes, logger),
		AdminService:    NewAdminService(notifier, logger),
		HealthService:   NewHealthService(storages.DB),
		AppInfoService:  appInfoService,
	}, nil
}
