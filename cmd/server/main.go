package main

import (
	"context"
	"errors"
	"os"

	"github.com/civilci/intake-portal/internal/adapter"
	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/handler"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/server"
	"github.com/civilci/intake-portal/internal/service"
	"github.com/civilci/intake-portal/internal/store"
	"github.com/civilci/intake-portal/internal/workers"
	"github.com/civilci/intake-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("intake-server")
	build := buildInfo()

	log.Info().
		Str("version", build.BuildVersion()).
		Str("date", build.BuildDate()).
		Str("commit", build.BuildCommit()).
		Msg("starting intake portal")

	if err := run(build, log); err != nil {
		log.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run(build models.AppBuildInfo, log *logger.Logger) error {
	ctx := context.Background()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return err
	}

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("evidence_dir", cfg.Storage.Files.EvidenceDir).
		Bool("email_configured", cfg.Adapter.Email.APIKey != "").
		Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	mailer := adapter.NewHTTPMailer(cfg.Adapter.Email, log)
	notifier := adapter.NewEmailNotifier(mailer, cfg.Adapter.Email, cfg.App.PublicURL, log)
	dispatcher := workers.NewDispatcher(cfg.Workers.NotificationTimeout, log)

	limiter, err := adapter.NewRedisRateLimiter(ctx, cfg.Adapter.Redis, cfg.Server.SubmissionLimit, cfg.Server.SubmissionWindow, log)
	switch {
	case errors.Is(err, adapter.ErrRateLimiterDisabled):
		log.Info().Msg("submission rate limiting disabled")
		limiter = nil
	case err != nil:
		return err
	default:
		defer func() {
			if err := limiter.Close(); err != nil {
				log.Err(err).Msg("error closing rate limiter")
			}
		}()
	}

	services, err := service.NewServices(storages, notifier, dispatcher, *cfg, build, log)
	if err != nil {
		return err
	}

	handlers, err := handler.NewHandlers(services, *cfg, limiter, log)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, dispatcher, log)
	if err != nil {
		return err
	}

	return srv.RunServer()
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
