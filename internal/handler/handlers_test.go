package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
)

// configWith returns a config with only the given server addresses set.
func configWith(httpAddr, grpcAddr string) config.StructuredConfig {
	var cfg config.StructuredConfig
	cfg.Server.HTTPAddress = httpAddr
	cfg.Server.GRPCAddress = grpcAddr
	return cfg
}

// Both transport constructors only store the services pointer, so nil is
// safe here.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.StructuredConfig
		wantHTTP bool
		wantGRPC bool
	}{
		{"both addresses", configWith(":8080", ":9090"), true, true},
		{"only http", configWith(":8080", ""), true, false},
		{"only grpc", configWith("", ":9090"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(nil, tt.cfg, nil, logger.Nop())

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(nil, config.StructuredConfig{}, nil, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := configWith(":8080", ":9090")

	h1, err1 := NewHandlers(nil, cfg, nil, logger.Nop())
	h2, err2 := NewHandlers(nil, cfg, nil, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
