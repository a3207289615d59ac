package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
// Durations accept either Go duration strings ("30s") or nanoseconds.
// Unknown keys are rejected so a misspelled setting fails startup.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string   `json:"token_sign_key"`
		TokenIssuer  string   `json:"token_issuer"`
		AdminEmails  []string `json:"admin_emails"`
		Version      string   `json:"version"`
		PublicURL    string   `json:"public_url"`
		LogLevel     string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			EvidenceDir    string `json:"evidence_dir"`
			MaxUploadBytes int64  `json:"max_upload_bytes"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		GRPCAddress      string   `json:"grpc_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		UploadTimeout    Duration `json:"upload_timeout"`
		SubmissionLimit  int      `json:"submission_limit"`
		SubmissionWindow Duration `json:"submission_window"`
	} `json:"server,omitempty"`

	Adapter struct {
		Email struct {
			APIKey       string   `json:"api_key"`
			BaseURL      string   `json:"base_url"`
			From         string   `json:"from"`
			AdminAddress string   `json:"admin_address"`
			Timeout      Duration `json:"timeout"`
		} `json:"email,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		NotificationTimeout Duration `json:"notification_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			AdminEmails:  jsonCfg.App.AdminEmails,
			Version:      jsonCfg.App.Version,
			PublicURL:    jsonCfg.App.PublicURL,
			LogLevel:     jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				EvidenceDir:    jsonCfg.Storage.Files.EvidenceDir,
				MaxUploadBytes: jsonCfg.Storage.Files.MaxUploadBytes,
			},
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			GRPCAddress:      jsonCfg.Server.GRPCAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			UploadTimeout:    time.Duration(jsonCfg.Server.UploadTimeout),
			SubmissionLimit:  jsonCfg.Server.SubmissionLimit,
			SubmissionWindow: time.Duration(jsonCfg.Server.SubmissionWindow),
		},
		Adapter: Adapter{
			Email: Email{
				APIKey:       jsonCfg.Adapter.Email.APIKey,
				BaseURL:      jsonCfg.Adapter.Email.BaseURL,
				From:         jsonCfg.Adapter.Email.From,
				AdminAddress: jsonCfg.Adapter.Email.AdminAddress,
				Timeout:      time.Duration(jsonCfg.Adapter.Email.Timeout),
			},
			Redis: Redis{
				Address:  jsonCfg.Adapter.Redis.Address,
				Password: jsonCfg.Adapter.Redis.Password,
				DB:       jsonCfg.Adapter.Redis.DB,
			},
		},
		Workers: Workers{
			NotificationTimeout: time.Duration(jsonCfg.Workers.NotificationTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
