package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validBase returns the smallest config that passes validation.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenSignKey: "sign", TokenIssuer: "issuer"},
		Storage: Storage{
			DB:    DB{DSN: "file::memory:"},
			Files: Files{EvidenceDir: "/tmp/evidence"},
		},
		Server: Server{HTTPAddress: "localhost:8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty configuration is rejected by
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that later configs override earlier
// non-zero fields while zero fields keep earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	override := &StructuredConfig{App: App{TokenIssuer: "json-issuer", Version: "2.0.0"}}
	b.configs = append(b.configs, validBase(), override)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
}

// TestBuild_AppliesDefaults verifies optional fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	base := validBase()
	base.Server.SubmissionLimit = 5
	b.configs = append(b.configs, base)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, int64(10<<20), cfg.Storage.Files.MaxUploadBytes)
	assert.Equal(t, "https://api.resend.com", cfg.Adapter.Email.BaseURL)
	assert.Equal(t, "Civil CI <noreply@civilci.com>", cfg.Adapter.Email.From)
	assert.Equal(t, "contact@civilci.com", cfg.Adapter.Email.AdminAddress)
	assert.Equal(t, 15*time.Second, cfg.Workers.NotificationTimeout)
	assert.Equal(t, time.Hour, cfg.Server.SubmissionWindow)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Server.UploadTimeout)
	assert.Equal(t, "https://civilci.com", cfg.App.PublicURL)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

// TestBuild_GRPCOnly verifies that a gRPC address alone satisfies the server
// requirement.
func TestBuild_GRPCOnly(t *testing.T) {
	base := validBase()
	base.Server = Server{GRPCAddress: "localhost:9090"}

	b := newConfigBuilder()
	b.configs = append(b.configs, base)

	_, err := b.build()
	require.NoError(t, err)
}

func TestBuild_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{"no dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no evidence dir", func(c *StructuredConfig) { c.Storage.Files.EvidenceDir = "" }, ErrInvalidStorageConfigs},
		{"negative upload cap", func(c *StructuredConfig) { c.Storage.Files.MaxUploadBytes = -1 }, ErrInvalidStorageConfigs},
		{"no sign key", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"no issuer", func(c *StructuredConfig) { c.App.TokenIssuer = "" }, ErrInvalidAppConfigs},
		{"no addresses", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"negative limit", func(c *StructuredConfig) { c.Server.SubmissionLimit = -3 }, ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := validBase()
			tt.mutate(base)

			b := newConfigBuilder()
			b.configs = append(b.configs, base)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFileIsIgnored verifies that a missing dotenv file
// does not set b.err.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// TestWithDotEnv_LoadsVariables verifies that variables from the dotenv file
// become visible to withEnv, without overriding the real environment.
func TestWithDotEnv_LoadsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PUBLIC_URL=https://portal.example\nAPP_VERSION=from-file\n"), 0o600))

	t.Setenv("ENV_FILE", path)
	t.Setenv("APP_VERSION", "from-env")
	t.Setenv("APP_PUBLIC_URL", "")
	require.NoError(t, os.Unsetenv("APP_PUBLIC_URL"))

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://portal.example", b.configs[0].App.PublicURL)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	resetFlags(t, nil)
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_RecordsParseError(t *testing.T) {
	resetFlags(t, []string{"-a", "not-an-address"})

	b := newConfigBuilder().withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/ignored.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}
