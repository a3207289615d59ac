package models

import "time"

// CaseNote is a remark attached to exactly one case.
// Notes are immutable after creation.
type CaseNote struct {
	ID       string  `json:"id"`
	CaseID   string  `json:"caseId"`
	AuthorID *string `json:"authorId"`
	Content  string  `json:"content"`

	// IsInternal hides the note from the owning client.
	// Only admins may create internal notes.
	IsInternal bool `json:"isInternal"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the CaseNote model.
func (n CaseNote) TableName() string {
	return "case_notes"
}

// NoteInput is the body of a note submission.
type NoteInput struct {
	Content    string `json:"content"`
	IsInternal bool   `json:"isInternal"`
}
