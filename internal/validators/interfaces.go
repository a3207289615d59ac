// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client input before it reaches storage: case
// submissions, notes, status changes and evidence uploads.
//
// Every rejection is a *ValidationError listing each offending field, which
// the HTTP layer renders as a 400 with field detail.
package validators

import "context"

// Validator checks obj, a value or pointer of one of the input models.
// fields, when given, limits the check to those JSON field names.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
