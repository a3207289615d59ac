package config

import "time"

const (
	defaultMaxUploadBytes      int64 = 10 << 20
	defaultEmailBaseURL              = "https://api.resend.com"
	defaultEmailFrom                 = "Civil CI <noreply@civilci.com>"
	defaultEmailAdminAddress         = "contact@civilci.com"
	defaultEmailTimeout              = 10 * time.Second
	defaultNotificationTimeout       = 15 * time.Second
	defaultRequestTimeout            = 30 * time.Second
	defaultUploadTimeout             = 10 * time.Minute
	defaultSubmissionWindow          = time.Hour
	defaultEnvFilePath               = ".env"
	defaultPublicURL                 = "https://civilci.com"
	defaultLogLevel                  = "info"
)

// applyDefaults fills zero-valued optional fields.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.PublicURL == "" {
		cfg.App.PublicURL = defaultPublicURL
	}
	if cfg.Storage.Files.MaxUploadBytes == 0 {
		cfg.Storage.Files.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.Adapter.Email.BaseURL == "" {
		cfg.Adapter.Email.BaseURL = defaultEmailBaseURL
	}
	if cfg.Adapter.Email.From == "" {
		cfg.Adapter.Email.From = defaultEmailFrom
	}
	if cfg.Adapter.Email.AdminAddress == "" {
		cfg.Adapter.Email.AdminAddress = defaultEmailAdminAddress
	}
	if cfg.Adapter.Email.Timeout == 0 {
		cfg.Adapter.Email.Timeout = defaultEmailTimeout
	}
	if cfg.Workers.NotificationTimeout == 0 {
		cfg.Workers.NotificationTimeout = defaultNotificationTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.UploadTimeout == 0 {
		cfg.Server.UploadTimeout = defaultUploadTimeout
	}
	if cfg.Server.SubmissionLimit > 0 && cfg.Server.SubmissionWindow == 0 {
		cfg.Server.SubmissionWindow = defaultSubmissionWindow
	}
}
