// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the intake
// portal. It aggregates all sub-configurations and is populated by merging
// values from an optional .env file, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity token parameters, the admin allow-list and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// evidence blob area.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate limit settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for outbound integrations: the email API
	// and the optional Redis instance.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the notification dispatcher.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the dotenv file loaded before the environment is read.
	// Defaults to ".env"; a missing file is not an error.
	EnvFilePath string `env:"ENV_FILE"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the evidence blob area settings.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key shared with the identity provider and
	// used to verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of every bearer token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AdminEmails lists the identities that are created (or promoted) as
	// admins on authentication. Comparison is case-insensitive.
	// Env: APP_ADMIN_EMAILS (comma separated)
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// PublicURL is the base URL of the portal, linked from outgoing emails.
	// Env: APP_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// LogLevel is the minimum zerolog level name. Defaults to "info".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network, timeout and rate limit settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens, in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UploadTimeout replaces RequestTimeout on the evidence upload route,
	// where a large file on a slow link takes longer than a normal request.
	// Env: SERVER_UPLOAD_TIMEOUT
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`

	// SubmissionLimit is the number of public case submissions a single
	// client address may make per SubmissionWindow. Zero disables limiting.
	// Env: SERVER_SUBMISSION_LIMIT
	SubmissionLimit int `env:"SUBMISSION_LIMIT"`

	// SubmissionWindow is the fixed rate limit window.
	// Env: SERVER_SUBMISSION_WINDOW
	SubmissionWindow time.Duration `env:"SUBMISSION_WINDOW"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by its form: a "postgres://" URL or key/value
	// string opens PostgreSQL through pgx, while "file:", "sqlite://" or
	// ":memory:" opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings for the evidence blob area.
type Files struct {
	// EvidenceDir is the directory that holds uploaded evidence blobs.
	// Env: STORAGE_FILES_EVIDENCE_DIR
	EvidenceDir string `env:"EVIDENCE_DIR"`

	// MaxUploadBytes caps a single evidence upload. Defaults to 10 MiB.
	// Env: STORAGE_FILES_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	Email Email `envPrefix:"EMAIL_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// Email configures the transactional email API.
// An empty APIKey leaves the mailer unconfigured: notifications are logged
// and dropped.
type Email struct {
	// Env: ADAPTER_EMAIL_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL of the email API. Defaults to https://api.resend.com.
	// Env: ADAPTER_EMAIL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// From is the sender of every message.
	// Env: ADAPTER_EMAIL_FROM
	From string `env:"FROM"`

	// AdminAddress receives new case alerts and test messages.
	// Env: ADAPTER_EMAIL_ADMIN_ADDRESS
	AdminAddress string `env:"ADMIN_ADDRESS"`

	// Timeout bounds a single API call.
	// Env: ADAPTER_EMAIL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Redis configures the optional Redis instance backing the submission
// rate limiter. An empty Address disables it.
type Redis struct {
	Address  string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"`
}

// Workers holds configuration for background work.
type Workers struct {
	// NotificationTimeout bounds a single fire-and-forget notification.
	// Env: WORKERS_NOTIFICATION_TIMEOUT
	NotificationTimeout time.Duration `env:"NOTIFICATION_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file (only fills variables not already present in the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied to the merged result before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
