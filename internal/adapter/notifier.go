// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/models"
)

const defaultStatusMessage = "Your case status has been updated."

var statusMessages = map[models.CaseStatus]string{
	models.StatusInProgress:  "Our team has begun working on your case. We're actively reviewing the information you provided.",
	models.StatusUnderReview: "Your case is currently under detailed review. We may reach out if we need additional information.",
	models.StatusCompleted:   "We have completed our review of your case. Please check your dashboard or expect a follow-up communication with our findings.",
	models.StatusClosed:      "Your case has been closed. If you have questions or need to reopen your case, please contact us.",
}

type caseData struct {
	Heading   string
	Case      models.CaseReview
	Reference string
	Phone     string
	Service   string
	Urgency   string
	AdminURL  string
	Previous  string
	Current   string
	Message   string
	Recipient string
}

// emailNotifier is the [Notifier] backed by a [Mailer].
type emailNotifier struct {
	mailer       Mailer
	adminAddress string
	publicURL    string
	logger       *logger.Logger
}

// NewEmailNotifier wires the lifecycle messages to mailer. Alerts and test
// messages go to cfg.AdminAddress; links point at publicURL.
func NewEmailNotifier(mailer Mailer, cfg config.Email, publicURL string, logger *logger.Logger) Notifier {
	return &emailNotifier{
		mailer:       mailer,
		adminAddress: cfg.AdminAddress,
		publicURL:    strings.TrimRight(publicURL, "/"),
		logger:       logger,
	}
}

func (n *emailNotifier) Configured() bool {
	return n.mailer.Configured()
}

func (n *emailNotifier) AdminAddress() string {
	return n.adminAddress
}

func (n *emailNotifier) NewCaseAlert(ctx context.Context, c models.CaseReview) error {
	data := n.caseData("New Case Review Submission", c)
	data.AdminURL = n.publicURL + "/admin/cases"

	subject := fmt.Sprintf("[Civil CI] New %s Case Review: %s", data.Urgency, c.Name)
	return n.send(ctx, newCaseMessage, n.adminAddress, subject, data)
}

func (n *emailNotifier) CaseConfirmation(ctx context.Context, c models.CaseReview) error {
	data := n.caseData("Case Review Confirmation", c)

	subject := "[Civil CI] Case Review Received - Reference " + data.Reference
	return n.send(ctx, confirmationMessage, c.Email, subject, data)
}

func (n *emailNotifier) StatusChanged(ctx context.Context, c models.CaseReview, previous models.CaseStatus) error {
	data := n.caseData("Case Status Update", c)
	data.Previous = previous.Label()
	data.Current = c.Status.Label()
	data.Message = defaultStatusMessage
	if msg, ok := statusMessages[c.Status]; ok {
		data.Message = msg
	}

	subject := "[Civil CI] Case Status Updated: " + strings.ToUpper(c.Status.Label())
	return n.send(ctx, statusMessage, c.Email, subject, data)
}

func (n *emailNotifier) SendTest(ctx context.Context) error {
	data := caseData{Heading: "Test Message", Recipient: n.adminAddress}
	return n.send(ctx, testMessage, n.adminAddress, "[Civil CI] Test email", data)
}

func (n *emailNotifier) caseData(heading string, c models.CaseReview) caseData {
	data := caseData{
		Heading:   heading,
		Case:      c,
		Reference: c.Reference(),
		Service:   "Not specified",
		Urgency:   strings.ToUpper(string(c.Urgency)),
	}
	if c.Phone != nil {
		data.Phone = *c.Phone
	}
	if c.ServiceType != nil {
		data.Service = c.ServiceType.Label()
	}
	return data
}

func (n *emailNotifier) send(ctx context.Context, m message, to, subject string, data caseData) error {
	html, text, err := m.render(data)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("subject", subject).Msg("error rendering email")
		return fmt.Errorf("render email: %w", err)
	}

	return n.mailer.Send(ctx, Email{
		To:      []string{to},
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
}
