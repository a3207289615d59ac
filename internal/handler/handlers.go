package handler

import (
	"github.com/civilci/intake-portal/internal/adapter"
	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/handler/grpc"
	"github.com/civilci/intake-portal/internal/handler/http"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured address.
// limiter may be nil.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, limiter adapter.RateLimiter, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, limiter, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
