// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds outbound integrations of the intake portal.
//
// [Mailer] delivers a single rendered message through a transactional email
// HTTP API. [Notifier] builds the case lifecycle messages on top of it:
// the admin new case alert, the requester confirmation and the status
// change notice. [RateLimiter] counts public submissions in Redis.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] on them.
package adapter

import (
	"context"

	"github.com/civilci/intake-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Email is a single rendered message.
type Email struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends rendered messages.
type Mailer interface {
	// Configured reports whether an API key was supplied. It never changes
	// after construction.
	Configured() bool

	// Send delivers email, returning [ErrMailerNotConfigured] when the
	// mailer is not configured.
	Send(ctx context.Context, email Email) error
}

// Notifier renders and sends case lifecycle messages.
type Notifier interface {
	Configured() bool

	// NewCaseAlert tells the admin address about a new submission.
	NewCaseAlert(ctx context.Context, caseReview models.CaseReview) error

	// CaseConfirmation acknowledges a submission to the requester.
	CaseConfirmation(ctx context.Context, caseReview models.CaseReview) error

	// StatusChanged tells the requester the case moved from previous to
	// caseReview.Status.
	StatusChanged(ctx context.Context, caseReview models.CaseReview, previous models.CaseStatus) error

	// SendTest sends a test message to the admin address.
	SendTest(ctx context.Context) error

	// AdminAddress is the recipient of alerts and test messages.
	AdminAddress() string
}

// RateLimiter counts hits per key inside a fixed window.
type RateLimiter interface {
	// Allow records a hit for key and reports whether it is still within
	// the limit.
	Allow(ctx context.Context, key string) (bool, error)

	Close() error
}
