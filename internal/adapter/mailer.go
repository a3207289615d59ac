package adapter

import (
	"context"
	"fmt"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/utils"
)

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

// httpMailer sends through a Resend compatible API: POST {base}/emails with
// a bearer API key.
type httpMailer struct {
	client *utils.HTTPClient

	apiKey     string
	from       string
	configured bool

	logger *logger.Logger
}

// NewHTTPMailer builds a [Mailer] for cfg. An empty cfg.APIKey yields an
// unconfigured mailer that logs and drops every message.
func NewHTTPMailer(cfg config.Email, logger *logger.Logger) Mailer {
	m := &httpMailer{
		client:     utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout),
		apiKey:     cfg.APIKey,
		from:       cfg.From,
		configured: cfg.APIKey != "",
		logger:     logger,
	}

	if !m.configured {
		logger.Warn().Msg("email api key not set; notifications will be logged and dropped")
	}
	return m
}

func (m *httpMailer) Configured() bool {
	return m.configured
}

// Send implements [Mailer].
func (m *httpMailer) Send(ctx context.Context, email Email) error {
	log := logger.FromContext(ctx)

	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if !m.configured {
		log.Info().Strs("to", email.To).Str("subject", email.Subject).Msg("email not configured; message dropped")
		return ErrMailerNotConfigured
	}

	var result sendEmailResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(m.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(sendEmailRequest{
			From:    m.from,
			To:      email.To,
			Subject: email.Subject,
			HTML:    email.HTML,
			Text:    email.Text,
		}).
		SetResult(&result).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	log.Info().Str("email_id", result.ID).Str("subject", email.Subject).Msg("email sent")
	return nil
}
