package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/handler"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/workers"
)

// shutdownTimeout bounds the whole graceful stop, notification drain included.
const shutdownTimeout = 20 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	// dispatcher is drained after the transports stop accepting requests.
	dispatcher workers.Dispatcher

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, dispatcher workers.Dispatcher, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{dispatcher: dispatcher, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or a transport
// fails, then shuts everything down.
func (s *server) RunServer() error {
	return s.run(context.Background())
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	// finish HTTP server
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}

	// let queued notifications finish
	if s.dispatcher != nil {
		if err := s.dispatcher.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("drain notifications: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (s *server) run(parent context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErrs := make(chan error, 2)

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go func() { serveErrs <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go func() { serveErrs <- s.gRPCServer.RunServer() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err := <-serveErrs:
		// a transport stopped on its own; take the rest down with it
		if err != nil {
			s.logger.Error().Err(err).Msg("server stopped unexpectedly")
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("server Shutdown finished with errors")
		return errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}
