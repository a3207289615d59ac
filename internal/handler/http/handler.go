package http

import (
	"time"

	"github.com/civilci/intake-portal/internal/adapter"
	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/service"
)

// multipartOverhead is the room left above the upload limit for multipart
// boundaries and part headers.
const multipartOverhead = 1 << 20

type Handler struct {
	services *service.Services

	// limiter is nil when submission rate limiting is disabled.
	limiter adapter.RateLimiter

	requestTimeout time.Duration
	uploadTimeout  time.Duration
	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, limiter adapter.RateLimiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		limiter:        limiter,
		requestTimeout: cfg.Server.RequestTimeout,
		uploadTimeout:  cfg.Server.UploadTimeout,
		maxUploadBytes: cfg.Storage.Files.MaxUploadBytes,
		logger:         logger,
	}
}
