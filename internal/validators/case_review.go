package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/civilci/intake-portal/models"
)

// Field names used both for scoping Validate and in ValidationError detail.
// They match the JSON names clients submit.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldServiceType = "serviceType"
	FieldCaseSummary = "caseSummary"
	FieldUrgency     = "urgency"
	FieldStatus      = "status"
	FieldContent     = "content"
	FieldFile        = "file"
)

const (
	MinNameLength        = 2
	MinCaseSummaryLength = 50
	MaxPhoneLength       = 32
	MaxNoteLength        = 10000
)

type CaseValidator struct {
}

func NewCaseValidator() Validator {
	return &CaseValidator{}
}

func (v *CaseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CaseReviewInput:
		return v.validateCaseReviewInput(value, fields...)
	case *models.CaseReviewInput:
		return v.validateCaseReviewInput(*value, fields...)

	case models.NoteInput:
		return v.validateNoteInput(value)
	case *models.NoteInput:
		return v.validateNoteInput(*value)

	case models.StatusUpdate:
		return v.validateStatusUpdate(value)
	case *models.StatusUpdate:
		return v.validateStatusUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CaseValidator) validateCaseReviewInput(input models.CaseReviewInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPhone, FieldServiceType, FieldCaseSummary, FieldUrgency}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if utf8.RuneCountInString(strings.TrimSpace(input.Name)) < MinNameLength {
				verr.Add(FieldName, "Name must be at least 2 characters")
			}
		case FieldEmail:
			if !IsEmail(input.Email) {
				verr.Add(FieldEmail, "Please enter a valid email address")
			}
		case FieldPhone:
			if input.Phone != nil && utf8.RuneCountInString(*input.Phone) > MaxPhoneLength {
				verr.Add(FieldPhone, "Phone number is too long")
			}
		case FieldServiceType:
			if input.ServiceType != nil && *input.ServiceType != "" && !models.ServiceType(*input.ServiceType).Valid() {
				verr.Add(FieldServiceType, "Unknown service type")
			}
		case FieldCaseSummary:
			if utf8.RuneCountInString(strings.TrimSpace(input.CaseSummary)) < MinCaseSummaryLength {
				verr.Add(FieldCaseSummary, "Please provide at least 50 characters describing your case")
			}
		case FieldUrgency:
			if !models.Urgency(input.Urgency).Valid() {
				verr.Add(FieldUrgency, "Please select an urgency level")
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.OrNil()
}

func (v *CaseValidator) validateNoteInput(input models.NoteInput) error {
	content := strings.TrimSpace(input.Content)
	switch {
	case content == "":
		return NewFieldError(FieldContent, "Note content is required")
	case utf8.RuneCountInString(content) > MaxNoteLength:
		return NewFieldError(FieldContent, "Note is too long")
	}
	return nil
}

func (v *CaseValidator) validateStatusUpdate(input models.StatusUpdate) error {
	if _, err := models.ParseCaseStatus(input.Status); err != nil {
		return NewFieldError(FieldStatus, "Unknown case status")
	}
	return nil
}

// IsEmail reports whether s is a bare RFC 5322 address such as
// "name@example.com". Display-name forms are rejected.
func IsEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
