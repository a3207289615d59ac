package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/handler"
	myGRPC "github.com/civilci/intake-portal/internal/handler/grpc"
	myHTTP "github.com/civilci/intake-portal/internal/handler/http"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/mock"
	"github.com/civilci/intake-portal/internal/service"
)

type healthyDB struct{}

func (healthyDB) PingContext(context.Context) error { return nil }

func localConfig() config.Server {
	return config.Server{
		HTTPAddress: "127.0.0.1:0",
		GRPCAddress: "127.0.0.1:0",
	}
}

func newTestHandlers(cfg config.Server) *handler.Handlers {
	services := &service.Services{HealthService: service.NewHealthService(healthyDB{})}

	var full config.StructuredConfig
	full.Server = cfg

	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, full, nil, logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, nil, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_AddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := config.Server{HTTPAddress: taken.Addr().String()}
	_, err = NewServer(newTestHandlers(cfg), cfg, nil, logger.Nop())

	assert.Error(t, err)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_ServesUntilCancelledAndDrainsDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mock.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().Shutdown(gomock.Any()).Return(nil).Times(1)

	cfg := localConfig()
	srv, err := NewServer(newTestHandlers(cfg), cfg, dispatcher, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	httpURL := fmt.Sprintf("http://%s/api/healthz", s.httpServer.listener.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(httpURL)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && strings.Contains(string(body), `"ok"`)
	}, 2*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(s.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get(httpURL)
	assert.Error(t, err)
}

func TestShutdown_ReportsDrainFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mock.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().Shutdown(gomock.Any()).Return(context.DeadlineExceeded)

	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	srv, err := NewServer(newTestHandlers(cfg), cfg, dispatcher, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.(*server).httpServer.listener.Close() })

	err = srv.Shutdown(context.Background())
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHTTPServer_RunAfterShutdownIsClean(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	h, err := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, h.Shutdown(context.Background()))
	assert.NoError(t, h.RunServer())
}
