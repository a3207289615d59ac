package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Urgency is the requester-declared priority of a case.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// urgencyRanks orders urgencies for triage: lower rank is more urgent.
var urgencyRanks = map[Urgency]int{
	UrgencyCritical: 0,
	UrgencyHigh:     1,
	UrgencyMedium:   2,
	UrgencyLow:      3,
}

// Valid reports whether u is one of the known urgency levels.
func (u Urgency) Valid() bool {
	_, ok := urgencyRanks[u]
	return ok
}

// Rank returns the triage rank of u. Unknown values sort last.
func (u Urgency) Rank() int {
	if rank, ok := urgencyRanks[u]; ok {
		return rank
	}
	return len(urgencyRanks)
}

// CaseStatus is the lifecycle label of a case.
//
// Any status may be set at any time by an admin; there is no enforced
// transition order.
type CaseStatus string

const (
	StatusPending     CaseStatus = "pending"
	StatusInProgress  CaseStatus = "in_progress"
	StatusUnderReview CaseStatus = "under_review"
	StatusCompleted   CaseStatus = "completed"
	StatusClosed      CaseStatus = "closed"
)

// statusAliases maps every accepted spelling to its canonical status.
// Hyphenated labels and "in_review" come from records written by earlier
// front-ends.
var statusAliases = map[string]CaseStatus{
	"pending":      StatusPending,
	"in_progress":  StatusInProgress,
	"in-progress":  StatusInProgress,
	"under_review": StatusUnderReview,
	"under-review": StatusUnderReview,
	"in_review":    StatusUnderReview,
	"in-review":    StatusUnderReview,
	"completed":    StatusCompleted,
	"closed":       StatusClosed,
}

// ParseCaseStatus normalizes s into a canonical [CaseStatus].
func ParseCaseStatus(s string) (CaseStatus, error) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown case status %q", s)
	}
	return status, nil
}

// Spellings returns every stored spelling that normalizes to s, sorted.
// Rows written by earlier front-ends may carry any of them.
func (s CaseStatus) Spellings() []string {
	var out []string
	for alias, status := range statusAliases {
		if status == s {
			out = append(out, alias)
		}
	}
	if len(out) == 0 {
		out = append(out, string(s))
	}
	sort.Strings(out)
	return out
}

// Label returns a human readable form of the status, e.g. "Under Review".
func (s CaseStatus) Label() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ServiceType is the optional kind of help the requester is asking for.
type ServiceType string

// serviceTypeLabels holds every known service type and its display label.
var serviceTypeLabels = map[ServiceType]string{
	"case-reconstruction":    "Case Reconstruction",
	"misconduct-review":      "Misconduct Review",
	"affidavit-support":      "Affidavit Support",
	"pro-se-support":         "Pro Se Support",
	"strategy-session":       "Strategy Session",
	"document-organization":  "Document Organization",
	"complaint-support":      "Complaint Support",
	"timeline-map":           "Timeline Map",
	"accountability-package": "Accountability Package",
	"not-sure":               "Not Sure",
}

// Valid reports whether t is a known service type.
func (t ServiceType) Valid() bool {
	_, ok := serviceTypeLabels[t]
	return ok
}

// Label returns the display label of t, falling back to the raw value.
func (t ServiceType) Label() string {
	if label, ok := serviceTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// CaseReview is a matter submitted for review by a member of the public.
type CaseReview struct {
	// ID is a time-ordered UUID assigned on submission.
	ID string `json:"id"`

	// UserID is the owner of the case. It is nil when the case was
	// submitted anonymously and never changes after creation.
	UserID *string `json:"userId"`

	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       *string      `json:"phone"`
	ServiceType *ServiceType `json:"serviceType"`
	CaseSummary string       `json:"caseSummary"`
	Urgency     Urgency      `json:"urgency"`
	Status      CaseStatus   `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the case belongs to the user with the given id.
func (c *CaseReview) OwnedBy(userID string) bool {
	return c.UserID != nil && userID != "" && *c.UserID == userID
}

// Reference returns the short case reference quoted in emails.
func (c *CaseReview) Reference() string {
	ref := c.ID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return strings.ToUpper(ref)
}

// TableName returns the name of the database table
// associated with the CaseReview model.
func (c CaseReview) TableName() string {
	return "case_reviews"
}

// CaseReviewInput is the body of a public case submission.
type CaseReviewInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	ServiceType *string `json:"serviceType,omitempty"`
	CaseSummary string  `json:"caseSummary"`
	Urgency     string  `json:"urgency"`
}

// StatusUpdate is the body of an admin status change.
type StatusUpdate struct {
	Status string `json:"status"`
}

// CaseSort selects the ordering of the admin case listing.
type CaseSort string

const (
	// SortTriage orders by urgency rank, then newest first.
	SortTriage CaseSort = "triage"

	// SortNewest orders by submission time, newest first.
	SortNewest CaseSort = "newest"
)

// CaseFilter narrows the admin case listing.
type CaseFilter struct {
	// Status, when set, keeps only cases with that status.
	Status *CaseStatus

	// Sort defaults to [SortTriage] when empty.
	Sort CaseSort
}
